package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/common"
)

// Backend implements session.Backend against the REST API.
type Backend struct {
	t *transport
}

var _ session.Backend = (*Backend)(nil)

func NewBackend(baseURL string, opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{t: newTransport(baseURL, o)}
}

func (b *Backend) RefreshToken(ctx context.Context, refreshToken string) (*session.TokenPair, error) {
	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, err
	}

	resp, err := b.t.do(ctx, http.MethodPost, common.TokenRefreshPath, nil, body)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("refresh token: %w", newHTTPError(resp))
	}

	var pair session.TokenPair
	if err := resp.JSON(&pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (b *Backend) Logout(ctx context.Context, accessToken string) error {
	h := http.Header{}
	h.Set(common.AuthorizationHeaderName, common.BearerPrefix+accessToken)

	resp, err := b.t.do(ctx, http.MethodPost, common.LogoutPath, h, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("logout: %w", newHTTPError(resp))
	}
	return nil
}
