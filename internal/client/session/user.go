package session

import "time"

// Permission strings derived from role flags.
const (
	PermReadOwnProfile  = "read:own_profile"
	PermWriteOwnProfile = "write:own_profile"
	PermAdminAll        = "admin:all"
	PermAdminModerate   = "admin:moderate"
	PermGuideMentor     = "guide:mentor"
)

// UserView is the read-only picture of the logged-in user handed to callers.
type UserView struct {
	ID       string
	Username string
	Email    string
	FullName string
	Avatar   string

	IsAdmin     bool
	IsModerator bool
	IsMentor    bool

	Permissions []string
	ExpiresAt   time.Time
}

// HasPermission reports whether p is among the user's permissions.
func (u *UserView) HasPermission(p string) bool {
	if u == nil {
		return false
	}
	for _, have := range u.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

func permissionsFor(admin, moderator, mentor bool) []string {
	perms := []string{PermReadOwnProfile, PermWriteOwnProfile}
	if admin {
		perms = append(perms, PermAdminAll)
	}
	if moderator {
		perms = append(perms, PermAdminModerate)
	}
	if mentor {
		perms = append(perms, PermGuideMentor)
	}
	return perms
}

func (r record) view() *UserView {
	return &UserView{
		ID:          r.UserID,
		Username:    r.Username,
		Email:       r.Email,
		FullName:    r.FullName,
		Avatar:      r.Avatar,
		IsAdmin:     r.IsAdmin,
		IsModerator: r.IsModerator,
		IsMentor:    r.IsMentor,
		Permissions: permissionsFor(r.IsAdmin, r.IsModerator, r.IsMentor),
		ExpiresAt:   r.ExpiresAt,
	}
}

func (u *UserView) clone() *UserView {
	c := *u
	c.Permissions = append([]string(nil), u.Permissions...)
	return &c
}
