package social

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophsocial/internal/client/api"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")
	ErrProtectedUser = errors.New("user cannot be modified")
	ErrEmptyContent  = errors.New("content must not be empty")
)

const (
	defaultPageSize   = 10
	minSearchQueryLen = 2
)

// Requester performs an authenticated backend call. *api.Client implements it.
type Requester interface {
	Request(ctx context.Context, path string, opts ...api.RequestOption) (*api.Response, error)
}

// Service exposes the resource endpoints.
type Service struct {
	r   Requester
	log logging.Logger
}

type Option func(*Service)

func WithLogger(l logging.Logger) Option { return func(s *Service) { s.log = l } }

func New(r Requester, opts ...Option) *Service {
	s := &Service{r: r, log: logging.Discard()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// do performs the call and decodes a 2xx body into out (when out is not
// nil). Non-2xx outcomes become errors; 404 matches ErrNotFound.
func (s *Service) do(ctx context.Context, method, path string, in, out any) error {
	opts := []api.RequestOption{api.WithMethod(method)}
	if in != nil {
		opts = append(opts, api.WithJSON(in))
	}

	resp, err := s.r.Request(ctx, path, opts...)
	if err == nil {
		err = resp.Err()
	}
	if err != nil {
		var herr *api.HTTPError
		if errors.As(err, &herr) && herr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
		}
		return err
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	return resp.JSON(out)
}

func (s *Service) get(ctx context.Context, path string, out any) error {
	return s.do(ctx, http.MethodGet, path, nil, out)
}

func pageParams(page, size int) (skip, limit int) {
	if size <= 0 {
		size = defaultPageSize
	}
	if page < 0 {
		page = 0
	}
	return page * size, size
}
