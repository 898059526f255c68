package cli

import (
	"context"
	"fmt"
	"strings"
)

// Search looks up users and posts; everything after the command is the query.
func (a *App) Search(ctx context.Context, args []string) error {
	res, err := a.social.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Users (%d):", len(res.Users)))
	for _, u := range res.Users {
		printlnFn(fmt.Sprintf("  @%s  %s", u.Username, u.FullName))
	}
	printlnFn(fmt.Sprintf("Posts (%d):", len(res.Posts)))
	for _, p := range res.Posts {
		printPost(p)
	}
	return nil
}

// Profile prints a user's profile, the caller's own without arguments.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		p, err := a.social.Me(ctx)
		if err != nil {
			return err
		}
		printProfile(p)
		return nil
	}

	p, err := a.social.Profile(ctx, args[0])
	if err != nil {
		return err
	}
	printProfile(p)
	return nil
}

func (a *App) Follow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("follow <username>")
	}
	if err := a.social.Follow(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("Following", args[0])
	return nil
}

func (a *App) Unfollow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("unfollow <username>")
	}
	if err := a.social.Unfollow(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("Unfollowed", args[0])
	return nil
}

// Stats prints the caller's activity overview.
func (a *App) Stats(ctx context.Context) error {
	s, err := a.social.Overview(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("posts %d, comments %d, likes %d, views %d",
		s.TotalPosts, s.TotalComments, s.TotalLikes, s.TotalViews))
	printlnFn(fmt.Sprintf("followers %d, following %d", s.TotalFollowers, s.TotalFollowing))
	return nil
}
