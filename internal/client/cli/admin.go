package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/social"
)

var errForbidden = errors.New("administrator rights required")

func (a *App) requireAdmin(ctx context.Context) error {
	u := a.session.CurrentUser(ctx)
	if u.HasPermission(session.PermAdminAll) || u.HasPermission(session.PermAdminModerate) {
		return nil
	}
	return errForbidden
}

// loadRoster fetches the user list once per session, or again when force is set.
func (a *App) loadRoster(ctx context.Context, force bool) (*social.Roster, error) {
	a.mu.Lock()
	r := a.roster
	a.mu.Unlock()
	if r != nil && !force {
		return r, nil
	}

	r = a.social.NewRoster()
	if err := r.Load(ctx); err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.roster = r
	a.mu.Unlock()
	return r, nil
}

// Users prints the site totals and the administration user list.
func (a *App) Users(ctx context.Context) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	st, err := a.social.AdminStats(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("users %d (%d new this month), posts %d, vice admins %d",
		st.TotalUsers, st.NewUsersMonth, st.TotalPosts, st.ViceAdminsCount))

	r, err := a.loadRoster(ctx, true)
	if err != nil {
		return err
	}
	for _, u := range r.Users() {
		printUser(u)
	}
	return nil
}

// SetRole assigns a role to a user.
func (a *App) SetRole(ctx context.Context, args []string) error {
	const form = "role <user id> <member|guide|vice_admin>"
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	id, err := argID(args, 0, form)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return usage(form)
	}
	role, err := social.ParseRole(args[1])
	if err != nil {
		return err
	}

	r, err := a.loadRoster(ctx, false)
	if err != nil {
		return err
	}
	m, err := r.ChangeRole(ctx, id, role)
	return reportMutation(r, m, err)
}

// Suspend suspends or reactivates a user.
func (a *App) Suspend(ctx context.Context, args []string, suspend bool) error {
	form := "activate <user id>"
	if suspend {
		form = "suspend <user id>"
	}
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	id, err := argID(args, 0, form)
	if err != nil {
		return err
	}

	r, err := a.loadRoster(ctx, false)
	if err != nil {
		return err
	}
	m, err := r.SetSuspended(ctx, id, suspend)
	return reportMutation(r, m, err)
}

func reportMutation(r *social.Roster, m social.Mutation, err error) error {
	if err != nil {
		if m.State == social.MutationRolledBack {
			return fmt.Errorf("%s of user %s rolled back: %w", m.Action, m.UserID, err)
		}
		return err
	}
	printlnFn(fmt.Sprintf("Done: %s", m.Action))
	if u, ok := r.User(m.UserID); ok {
		printUser(u)
	}
	return nil
}

func printUser(u social.AdminUser) {
	state := "active"
	if u.IsSuspended {
		state = "suspended"
	}
	printlnFn(fmt.Sprintf("[%s] @%s <%s> %s, %s", u.ID, u.Username, u.Email, u.Role(), state))
}
