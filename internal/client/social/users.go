package social

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Me returns the logged-in user's own profile.
func (s *Service) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := s.get(ctx, "/api/users/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) UpdateMe(ctx context.Context, u ProfileUpdate) (*Profile, error) {
	var out Profile
	if err := s.do(ctx, http.MethodPut, "/api/users/me", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile returns another user's profile. An unknown user matches ErrNotFound.
func (s *Service) Profile(ctx context.Context, username string) (*Profile, error) {
	var out Profile
	if err := s.get(ctx, userPath(username), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) UserPosts(ctx context.Context, username string, page, size int) (*FeedPage, error) {
	skip, limit := pageParams(page, size)

	var posts []Post
	if err := s.get(ctx, fmt.Sprintf("%s/posts?skip=%d&limit=%d", userPath(username), skip, limit), &posts); err != nil {
		return nil, err
	}
	return &FeedPage{Posts: posts, Page: skip / limit, HasMore: len(posts) == limit}, nil
}

func (s *Service) Followers(ctx context.Context, username string) ([]Profile, error) {
	var out []Profile
	if err := s.get(ctx, userPath(username)+"/followers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Following(ctx context.Context, username string) ([]Profile, error) {
	var out []Profile
	if err := s.get(ctx, userPath(username)+"/following", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Follow(ctx context.Context, username string) error {
	return s.do(ctx, http.MethodPost, userPath(username)+"/follow", nil, nil)
}

func (s *Service) Unfollow(ctx context.Context, username string) error {
	return s.do(ctx, http.MethodDelete, userPath(username)+"/unfollow", nil, nil)
}

func userPath(username string) string {
	return "/api/users/" + url.PathEscape(username)
}

