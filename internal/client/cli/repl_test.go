package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	touches  int
	calls    []string
	fail     error
}

func (f *fakeExec) record(name string, args ...string) error {
	if len(args) > 0 {
		name += " " + strings.Join(args, " ")
	}
	f.calls = append(f.calls, name)
	return f.fail
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Touch()           { f.touches++ }

func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error { return f.record("whoami") }

func (f *fakeExec) Feed(_ context.Context, a []string) error     { return f.record("feed", a...) }
func (f *fakeExec) Post(context.Context) error                   { return f.record("post") }
func (f *fakeExec) Like(_ context.Context, a []string) error     { return f.record("like", a...) }
func (f *fakeExec) Unlike(_ context.Context, a []string) error   { return f.record("unlike", a...) }
func (f *fakeExec) Comments(_ context.Context, a []string) error { return f.record("comments", a...) }
func (f *fakeExec) Comment(_ context.Context, a []string) error  { return f.record("comment", a...) }

func (f *fakeExec) Notifications(context.Context) error          { return f.record("notifications") }
func (f *fakeExec) MarkRead(_ context.Context, a []string) error { return f.record("read", a...) }
func (f *fakeExec) MarkAllRead(context.Context) error            { return f.record("readall") }

func (f *fakeExec) Search(_ context.Context, a []string) error   { return f.record("search", a...) }
func (f *fakeExec) Profile(_ context.Context, a []string) error  { return f.record("profile", a...) }
func (f *fakeExec) Follow(_ context.Context, a []string) error   { return f.record("follow", a...) }
func (f *fakeExec) Unfollow(_ context.Context, a []string) error { return f.record("unfollow", a...) }
func (f *fakeExec) Stats(context.Context) error                  { return f.record("stats") }

func (f *fakeExec) Users(context.Context) error                 { return f.record("users") }
func (f *fakeExec) SetRole(_ context.Context, a []string) error { return f.record("role", a...) }
func (f *fakeExec) Suspend(_ context.Context, a []string, s bool) error {
	if s {
		return f.record("suspend", a...)
	}
	return f.record("activate", a...)
}

// capturePrint swaps printlnFn for a recorder.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func runLines(exec execIface, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_DispatchesWithArguments(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{}
	runLines(exec,
		"login",
		"feed 2",
		"like 7",
		"comment 7 3",
		"search go lang",
		"role 5 guide",
		"suspend 5",
		"activate 5",
		"read 9",
		"logout",
		"exit",
		"whoami",
	)

	assert.Equal(t, []string{
		"login",
		"feed 2",
		"like 7",
		"comment 7 3",
		"search go lang",
		"role 5 guide",
		"suspend 5",
		"activate 5",
		"read 9",
		"logout",
	}, exec.calls)
	assert.Equal(t, 10, exec.touches)
}

func TestRunREPL_GuestIsRefused(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{}
	runLines(exec, "feed", "help", "quit")

	assert.Empty(t, exec.calls)
	assert.Zero(t, exec.touches)
	assert.Contains(t, *out, "Please log in first.")
	assert.Contains(t, *out, helpGuest)
	assert.NotContains(t, *out, helpUser)
}

func TestRunREPL_UnknownAndErrors(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{loggedIn: true, fail: errors.New("boom")}
	runLines(exec, "", "foobar", "stats", "help")

	assert.Equal(t, []string{"stats"}, exec.calls)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Error: boom")
	assert.Contains(t, *out, helpAdmin)
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := capturePrint(t)

	runLines(&fakeExec{}, "exit")

	assert.Equal(t, []string{"gs> status > ", "Bye!"}, *out)
}
