package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/client/social"
	"github.com/dmitrijs2005/gophsocial/internal/shared"
)

const snippetLen = 80

var errUsage = errors.New("wrong arguments")

func usage(format string) error {
	return fmt.Errorf("%w, usage: %s", errUsage, format)
}

func argID(args []string, i int, form string) (social.ID, error) {
	if len(args) <= i || args[i] == "" {
		return "", usage(form)
	}
	return social.ID(args[i]), nil
}

// argPage reads an optional one-based page number and returns it zero-based.
func argPage(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, usage("feed [page]")
	}
	return n - 1, nil
}

func roleLabel(admin, moderator, mentor bool) string {
	var roles []string
	if admin {
		roles = append(roles, "admin")
	}
	if moderator {
		roles = append(roles, "moderator")
	}
	if mentor {
		roles = append(roles, "mentor")
	}
	if len(roles) == 0 {
		return "member"
	}
	return strings.Join(roles, ", ")
}

func printPost(p social.Post) {
	liked := ""
	if p.IsLiked {
		liked = " *"
	}
	head := fmt.Sprintf("[%s] @%s  %s", p.ID, p.OwnerUsername, p.CreatedAt)
	if p.Title != "" {
		head += "  " + p.Title
	}
	printlnFn(head)
	printlnFn("    " + shared.Snippet(p.Content, snippetLen))
	printlnFn(fmt.Sprintf("    likes %d%s, comments %d", p.LikesCount, liked, p.CommentsCount))
}

// printComments prints a comment thread, replies indented under their parent.
func printComments(list []social.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range list {
		printlnFn(fmt.Sprintf("%s[%s] @%s: %s (%d likes)",
			indent, c.ID, c.OwnerUsername, shared.Snippet(c.Text, snippetLen), c.LikesCount))
		printComments(c.Children, depth+1)
	}
}

func printProfile(p *social.Profile) {
	printlnFn(fmt.Sprintf("@%s  %s", p.Username, p.FullName))
	if p.Bio != "" {
		printlnFn("    " + shared.Snippet(p.Bio, snippetLen))
	}
	follow := ""
	if p.IsFollowing {
		follow = ", following"
	}
	printlnFn(fmt.Sprintf("    followers %d, following %d%s", p.FollowersCount, p.FollowingCount, follow))
}
