package social

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// Role is an administrative role as the admin endpoints name it.
type Role string

const (
	RoleMember    Role = "member"
	RoleGuide     Role = "guide"
	RoleViceAdmin Role = "vice_admin"
	RoleMaster    Role = "master"
)

// ParseRole accepts the assignable roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleMember, RoleGuide, RoleViceAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q (want member, guide or vice_admin)", s)
	}
}

// AdminUser is a row of the administration user list.
type AdminUser struct {
	ID             ID     `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	IsMaster       bool   `json:"is_master"`
	IsViceAdmin    bool   `json:"is_vice_admin"`
	IsGuide        bool   `json:"is_guide"`
	IsSuspended    bool   `json:"is_suspended"`
}

// Role derives the single displayed role from the flags.
func (u AdminUser) Role() Role {
	switch {
	case u.IsMaster:
		return RoleMaster
	case u.IsViceAdmin:
		return RoleViceAdmin
	case u.IsGuide:
		return RoleGuide
	default:
		return RoleMember
	}
}

func (u AdminUser) withRole(r Role) AdminUser {
	u.IsViceAdmin = r == RoleViceAdmin
	u.IsGuide = r == RoleGuide
	return u
}

type AdminStats struct {
	TotalUsers      int `json:"total_users"`
	TotalPosts      int `json:"total_posts"`
	NewUsersMonth   int `json:"new_users_month"`
	ViceAdminsCount int `json:"vice_admins_count"`
}

func (s *Service) ListUsers(ctx context.Context) ([]AdminUser, error) {
	var out []AdminUser
	if err := s.get(ctx, "/api/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) AdminStats(ctx context.Context) (*AdminStats, error) {
	var out AdminStats
	if err := s.get(ctx, "/api/admin/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MutationState tracks an optimistic change to a roster row.
type MutationState string

const (
	MutationPending    MutationState = "pending"
	MutationCommitted  MutationState = "committed"
	MutationRolledBack MutationState = "rolled_back"
)

// Mutation records one optimistic change: the row before it, the row the
// client assumed, and how it ended.
type Mutation struct {
	Seq      int
	UserID   ID
	Action   string
	Previous AdminUser
	Proposed AdminUser
	State    MutationState
	Err      error
}

// Roster is the admin's local copy of the user list. Changes are applied
// to the copy immediately and then either confirmed by the server or
// undone.
type Roster struct {
	svc *Service

	mu        sync.Mutex
	order     []ID
	users     map[ID]AdminUser
	mutations []*Mutation
}

func (s *Service) NewRoster() *Roster {
	return &Roster{svc: s, users: map[ID]AdminUser{}}
}

// Load replaces the local copy with the server's list.
func (r *Roster) Load(ctx context.Context) error {
	list, err := r.svc.ListUsers(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = r.order[:0]
	r.users = make(map[ID]AdminUser, len(list))
	for _, u := range list {
		r.order = append(r.order, u.ID)
		r.users[u.ID] = u
	}
	return nil
}

// Users returns the rows in server order.
func (r *Roster) Users() []AdminUser {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]AdminUser, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out
}

func (r *Roster) User(id ID) (AdminUser, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	return u, ok
}

// Mutations returns a snapshot of every change made through the roster.
func (r *Roster) Mutations() []Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Mutation, len(r.mutations))
	for i, m := range r.mutations {
		out[i] = *m
	}
	return out
}

// ChangeRole assigns role to the user.
func (r *Roster) ChangeRole(ctx context.Context, id ID, role Role) (Mutation, error) {
	if _, err := ParseRole(string(role)); err != nil {
		return Mutation{}, err
	}
	return r.mutate(ctx, id, "role",
		func(u AdminUser) AdminUser { return u.withRole(role) },
		adminUserPath(id, "role"), map[string]string{"role": string(role)})
}

// SetSuspended suspends or reactivates the user.
func (r *Roster) SetSuspended(ctx context.Context, id ID, suspend bool) (Mutation, error) {
	action := "activate"
	if suspend {
		action = "suspend"
	}
	return r.mutate(ctx, id, action,
		func(u AdminUser) AdminUser { u.IsSuspended = suspend; return u },
		adminUserPath(id, "suspension"), map[string]bool{"suspend": suspend})
}

func (r *Roster) mutate(ctx context.Context, id ID, action string, apply func(AdminUser) AdminUser, path string, body any) (Mutation, error) {
	r.mu.Lock()
	prev, ok := r.users[id]
	if !ok {
		r.mu.Unlock()
		return Mutation{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if prev.IsMaster {
		r.mu.Unlock()
		return Mutation{}, fmt.Errorf("user %s: %w", id, ErrProtectedUser)
	}
	m := &Mutation{
		Seq:      len(r.mutations) + 1,
		UserID:   id,
		Action:   action,
		Previous: prev,
		Proposed: apply(prev),
		State:    MutationPending,
	}
	r.mutations = append(r.mutations, m)
	r.users[id] = m.Proposed
	r.mu.Unlock()

	var confirmed AdminUser
	err := r.svc.do(ctx, http.MethodPut, path, body, &confirmed)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.users[id] = m.Previous
		m.State = MutationRolledBack
		m.Err = err
		r.svc.log.Warn(ctx, "admin change rolled back", "user", string(id), "action", action, "error", err)
		return *m, err
	}

	if confirmed.ID == "" {
		confirmed = m.Proposed
	}
	r.users[id] = confirmed
	m.State = MutationCommitted
	return *m, nil
}

func adminUserPath(id ID, leaf string) string {
	return "/api/admin/users/" + url.PathEscape(string(id)) + "/" + leaf
}
