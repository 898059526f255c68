package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"golang.org/x/sync/singleflight"
)

// Client issues backend requests on behalf of a session.
type Client struct {
	t       *transport
	session *session.Manager
	log     logging.Logger
	opts    options

	inflight singleflight.Group
}

func NewClient(baseURL string, s *session.Manager, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		t:       newTransport(baseURL, o),
		session: s,
		log:     o.log,
		opts:    o,
	}
}

// Session returns the manager the client acts for.
func (c *Client) Session() *session.Manager {
	return c.session
}

// Request performs a call to path (relative to the base URL).
//
// Concurrent calls with the same method and path share one network call
// and one Response; the shared call runs under the first caller's context.
// A 400 response is returned without error so its body can be inspected.
// Other non-2xx statuses come back as *HTTPError, except a 429 that is
// still rate limited after all attempts, which is returned as is.
func (c *Client) Request(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	r := newRequest(opts...)
	if r.err != nil {
		return nil, r.err
	}
	if !r.skipAuth && c.session.Token(ctx) == "" {
		return nil, ErrUnauthenticated
	}

	key := r.method + " " + path
	v, err, shared := c.inflight.Do(key, func() (any, error) {
		return c.call(ctx, path, r)
	})
	if shared {
		c.log.Debug(ctx, "request coalesced", "key", key)
	}
	if err != nil {
		return nil, err
	}
	return v.(*Response), nil
}

// call applies the status policy to a single logical request.
func (c *Client) call(ctx context.Context, path string, r *request) (*Response, error) {
	resp, err := c.sendRateLimited(ctx, path, r)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !r.skipAuth {
		if err := c.session.RefreshToken(ctx); err != nil {
			c.log.Warn(ctx, "token refresh after 401 failed", "path", path, "error", err)
		}

		if c.session.Token(ctx) != "" {
			resp, err = c.sendRateLimited(ctx, path, r)
			if err != nil {
				return nil, err
			}
		}

		if resp.StatusCode == http.StatusUnauthorized {
			c.session.Logout(ctx, session.ReasonUnauthorized)
			return nil, ErrAuthExpired
		}
	}

	switch {
	case resp.OK(),
		resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusTooManyRequests:
		return resp, nil
	default:
		return nil, newHTTPError(resp)
	}
}

// send transmits r once, with the token current at this moment.
func (c *Client) send(ctx context.Context, path string, r *request) (*Response, error) {
	h := r.header.Clone()
	if !r.skipAuth {
		token := c.session.Token(ctx)
		if token == "" {
			return nil, ErrUnauthenticated
		}
		h.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return c.t.do(ctx, r.method, path, h, r.body)
}
