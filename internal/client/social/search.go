package social

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// SearchResults holds both halves of a search.
type SearchResults struct {
	Query string
	Users []Profile
	Posts []Post
}

// Search looks up users and posts matching q in parallel. Queries shorter
// than two characters after trimming are rejected locally.
func (s *Service) Search(ctx context.Context, q string) (*SearchResults, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < minSearchQueryLen {
		return nil, ErrQueryTooShort
	}

	res := &SearchResults{Query: q}
	escaped := url.QueryEscape(q)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.get(gctx, "/api/search/users?q="+escaped, &res.Users)
	})
	g.Go(func() error {
		return s.get(gctx, "/api/search/posts?q="+escaped, &res.Posts)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
