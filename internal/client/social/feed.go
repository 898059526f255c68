package social

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// FeedPage is one page of the home feed.
type FeedPage struct {
	Posts   []Post
	Page    int
	HasMore bool
}

// Feed returns page (zero-based) of the feed, size posts per page. HasMore
// is a guess: a full page suggests there is another one.
func (s *Service) Feed(ctx context.Context, page, size int) (*FeedPage, error) {
	skip, limit := pageParams(page, size)

	var posts []Post
	if err := s.get(ctx, fmt.Sprintf("/api/feed?skip=%d&limit=%d", skip, limit), &posts); err != nil {
		return nil, err
	}
	return &FeedPage{Posts: posts, Page: skip / limit, HasMore: len(posts) == limit}, nil
}

// NewPost is the body of a post creation.
type NewPost struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

func (s *Service) CreatePost(ctx context.Context, p NewPost) (*Post, error) {
	p.Content = strings.TrimSpace(p.Content)
	if p.Content == "" {
		return nil, ErrEmptyContent
	}

	var out Post
	if err := s.do(ctx, http.MethodPost, "/api/posts", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) UpdatePost(ctx context.Context, id ID, p NewPost) (*Post, error) {
	var out Post
	if err := s.do(ctx, http.MethodPut, postPath(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) DeletePost(ctx context.Context, id ID) error {
	return s.do(ctx, http.MethodDelete, postPath(id), nil, nil)
}

type likes struct {
	LikesCount int `json:"likes_count"`
}

// LikePost likes a post and returns its new like count.
func (s *Service) LikePost(ctx context.Context, id ID) (int, error) {
	var out likes
	err := s.do(ctx, http.MethodPost, postPath(id)+"/like", nil, &out)
	return out.LikesCount, err
}

// UnlikePost removes the like and returns the new like count.
func (s *Service) UnlikePost(ctx context.Context, id ID) (int, error) {
	var out likes
	err := s.do(ctx, http.MethodDelete, postPath(id)+"/unlike", nil, &out)
	return out.LikesCount, err
}

func postPath(id ID) string {
	return "/api/posts/" + url.PathEscape(string(id))
}
