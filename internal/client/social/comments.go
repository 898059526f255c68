package social

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Comments lists the top-level comments of a post.
func (s *Service) Comments(ctx context.Context, postID ID) ([]Comment, error) {
	var out []Comment
	if err := s.get(ctx, postPath(postID)+"/comments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Replies lists the replies to a comment.
func (s *Service) Replies(ctx context.Context, commentID ID) ([]Comment, error) {
	var out []Comment
	if err := s.get(ctx, commentPath(commentID)+"/replies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Comment(ctx context.Context, id ID) (*Comment, error) {
	var out Comment
	if err := s.get(ctx, commentPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type newComment struct {
	Text     string `json:"text"`
	ParentID ID     `json:"parent_id,omitempty"`
}

// AddComment comments on a post. A non-empty parentID makes it a reply.
func (s *Service) AddComment(ctx context.Context, postID ID, text string, parentID ID) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyContent
	}

	var out Comment
	if err := s.do(ctx, http.MethodPost, postPath(postID)+"/comments", newComment{Text: text, ParentID: parentID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) LikeComment(ctx context.Context, id ID) (int, error) {
	var out likes
	err := s.do(ctx, http.MethodPost, commentPath(id)+"/like", nil, &out)
	return out.LikesCount, err
}

func (s *Service) UnlikeComment(ctx context.Context, id ID) (int, error) {
	var out likes
	err := s.do(ctx, http.MethodDelete, commentPath(id)+"/unlike", nil, &out)
	return out.LikesCount, err
}

func commentPath(id ID) string {
	return "/api/comments/" + url.PathEscape(string(id))
}
