package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Touch()

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Feed(ctx context.Context, args []string) error
	Post(ctx context.Context) error
	Like(ctx context.Context, args []string) error
	Unlike(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error

	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context, args []string) error
	MarkAllRead(ctx context.Context) error

	Search(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string) error
	Unfollow(ctx context.Context, args []string) error
	Stats(ctx context.Context) error

	Users(ctx context.Context) error
	SetRole(ctx context.Context, args []string) error
	Suspend(ctx context.Context, args []string, suspend bool) error
}

const (
	helpGuest = "Available commands: register, login, exit"
	helpUser  = "Available commands: whoami, feed [page], post, like <id>, unlike <id>, " +
		"comments <post>, comment <post> [parent], notifications, read <id>, readall, " +
		"search <query>, profile [user], follow <user>, unfollow <user>, stats, logout, exit"
	helpAdmin = "Admin commands: users, role <id> <member|guide|vice_admin>, suspend <id>, activate <id>"
)

// runREPL starts a simple read–eval–print loop for the gophsocial CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as its arguments, and dispatches to methods on 'a'.
// Every recognised command marks user activity. Commands that need a session
// are refused while logged out. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gs> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
				printlnFn(helpAdmin)
			} else {
				printlnFn(helpGuest)
			}
			continue

		case "register", "login":
			a.Touch()
			var err error
			if cmd == "register" {
				err = a.Register(ctx)
			} else {
				err = a.Login(ctx)
			}
			report(err)
			continue
		}

		run, ok := dispatch(a, cmd, args)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}
		a.Touch()
		report(run(ctx))
	}
}

// dispatch maps a session-only command to its handler.
func dispatch(a execIface, cmd string, args []string) (func(context.Context) error, bool) {
	with := func(fn func(context.Context, []string) error) func(context.Context) error {
		return func(ctx context.Context) error { return fn(ctx, args) }
	}

	switch cmd {
	case "logout":
		return a.Logout, true
	case "whoami":
		return a.WhoAmI, true
	case "feed":
		return with(a.Feed), true
	case "post":
		return a.Post, true
	case "like":
		return with(a.Like), true
	case "unlike":
		return with(a.Unlike), true
	case "comments":
		return with(a.Comments), true
	case "comment":
		return with(a.Comment), true
	case "notifications", "n":
		return a.Notifications, true
	case "read":
		return with(a.MarkRead), true
	case "readall":
		return a.MarkAllRead, true
	case "search":
		return with(a.Search), true
	case "profile":
		return with(a.Profile), true
	case "follow":
		return with(a.Follow), true
	case "unfollow":
		return with(a.Unfollow), true
	case "stats":
		return a.Stats, true
	case "users":
		return a.Users, true
	case "role":
		return with(a.SetRole), true
	case "suspend":
		return func(ctx context.Context) error { return a.Suspend(ctx, args, true) }, true
	case "activate":
		return func(ctx context.Context) error { return a.Suspend(ctx, args, false) }, true
	}
	return nil, false
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
