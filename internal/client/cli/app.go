package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophsocial/internal/client/api"
	"github.com/dmitrijs2005/gophsocial/internal/client/config"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/social"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

// authService is the part of api.Client the App needs for credentials.
type authService interface {
	Login(ctx context.Context, username, password string) (*session.UserView, error)
	Register(ctx context.Context, req api.RegisterRequest) (*session.UserView, error)
	Logout(ctx context.Context)
}

type App struct {
	config  *config.Config
	session *session.Manager
	auth    authService
	social  *social.Service
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu         sync.Mutex
	roster     *social.Roster
	badge      string
	stopPoller context.CancelFunc
	subs       []*session.Subscription
}

func NewApp(c *config.Config, s *session.Manager, auth authService, soc *social.Service, log logging.Logger) *App {
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		config:  c,
		session: s,
		auth:    auth,
		social:  soc,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run restores any persisted session and serves the REPL until the user
// leaves the REPL or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.watchSession(ctx)
	defer a.unwatchSession()

	a.session.Restore(ctx)
	if u := a.session.CurrentUser(ctx); u != nil {
		a.startBadgePoller(ctx)
		fmt.Fprintf(a.out, "Welcome back, %s\n", u.Username)
	}

	fmt.Fprintln(a.out, "gophsocial CLI (type 'help' for commands)")

	// A pending read on stdin cannot be interrupted; on cancellation the
	// REPL goroutine is abandoned.
	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, bufio.NewScanner(lineReader{a.reader}))
	}()

	select {
	case <-done:
	case <-ctx.Done():
		fmt.Fprintln(a.out)
	}
}

func (a *App) watchSession(ctx context.Context) {
	login := a.session.Subscribe(session.EventLogin, func(e session.Event) {
		a.log.Debug(ctx, "session event", "kind", string(e.Kind), "user", e.User.Username)
		a.startBadgePoller(ctx)
	})
	logout := a.session.Subscribe(session.EventLogout, func(session.Event) {
		a.log.Debug(ctx, "session event", "kind", string(session.EventLogout))
		a.stopBadgePoller()
	})

	a.mu.Lock()
	a.subs = append(a.subs, login, logout)
	a.mu.Unlock()
}

func (a *App) unwatchSession() {
	a.mu.Lock()
	subs := a.subs
	a.subs = nil
	a.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
	a.stopBadgePoller()
}

// ToEntry implements session.Navigator.
func (a *App) ToEntry(reason session.LogoutReason) {
	switch reason {
	case session.ReasonSessionExpired:
		fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
	case session.ReasonUnauthorized:
		fmt.Fprintln(a.out, "You have been signed out. Please log in again.")
	default:
		fmt.Fprintln(a.out, "Logged out.")
	}
}

func (a *App) startBadgePoller(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopPoller != nil || a.social == nil {
		return
	}

	pctx, cancel := context.WithCancel(ctx)
	a.stopPoller = cancel
	p := a.social.NewBadgePoller(a.config.NotificationPollInterval, func(n int, _ string) {
		a.setBadge(n)
	})
	go p.Run(pctx)
}

func (a *App) stopBadgePoller() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopPoller != nil {
		a.stopPoller()
		a.stopPoller = nil
	}
	a.badge = ""
	a.roster = nil
}

func (a *App) setBadge(n int) {
	a.mu.Lock()
	a.badge = social.BadgeText(n)
	a.mu.Unlock()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated(context.Background())
}

// Touch marks user activity.
func (a *App) Touch() {
	a.session.Touch()
}

// status renders the prompt decoration: user name and unread badge.
func (a *App) status() string {
	u := a.session.CurrentUser(context.Background())
	if u == nil {
		return ""
	}

	a.mu.Lock()
	badge := a.badge
	a.mu.Unlock()

	if badge != "" {
		return fmt.Sprintf("(%s [%s])", u.Username, badge)
	}
	return fmt.Sprintf("(%s)", u.Username)
}
