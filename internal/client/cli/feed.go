package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/client/social"
)

var getMultiline = GetMultiline

const feedPageSize = 10

// Feed prints a page of the home feed. Pages are numbered from one.
func (a *App) Feed(ctx context.Context, args []string) error {
	page, err := argPage(args)
	if err != nil {
		return err
	}

	fp, err := a.social.Feed(ctx, page, feedPageSize)
	if err != nil {
		return err
	}
	if len(fp.Posts) == 0 {
		printlnFn("Nothing here yet.")
		return nil
	}
	for _, p := range fp.Posts {
		printPost(p)
	}
	if fp.HasMore {
		printlnFn(fmt.Sprintf("More: feed %d", page+2))
	}
	return nil
}

// Post prompts for a title and a multi-line body and publishes them.
func (a *App) Post(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title (optional)", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Text", a.out)
	if err != nil {
		return err
	}

	p, err := a.social.CreatePost(ctx, social.NewPost{Title: title, Content: content})
	if err != nil {
		return err
	}
	printlnFn("Posted:", p.ID)
	return nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "like <post id>")
	if err != nil {
		return err
	}
	n, err := a.social.LikePost(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Liked (%d)", n))
	return nil
}

func (a *App) Unlike(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "unlike <post id>")
	if err != nil {
		return err
	}
	n, err := a.social.UnlikePost(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Unliked (%d)", n))
	return nil
}

// Comments prints the comment thread of a post.
func (a *App) Comments(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "comments <post id>")
	if err != nil {
		return err
	}
	list, err := a.social.Comments(ctx, id)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No comments.")
		return nil
	}
	printComments(list, 0)
	return nil
}

// Comment adds a comment to a post, or a reply when a parent comment is given.
func (a *App) Comment(ctx context.Context, args []string) error {
	const form = "comment <post id> [parent comment id]"
	postID, err := argID(args, 0, form)
	if err != nil {
		return err
	}
	var parent social.ID
	if len(args) > 1 {
		parent = social.ID(args[1])
	}

	text, err := getSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return social.ErrEmptyContent
	}

	c, err := a.social.AddComment(ctx, postID, text, parent)
	if err != nil {
		return err
	}
	printlnFn("Commented:", c.ID)
	return nil
}
