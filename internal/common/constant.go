// Package common contains constants shared by the client packages.
package common

// AppName namespaces persisted keys and environment variables.
const AppName = "gophsocial"

// HTTP header names used on outbound requests and read from responses.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	RequestIDHeaderName     = "X-Request-ID"
	RetryAfterHeaderName    = "Retry-After"

	BearerPrefix    = "Bearer "
	ContentTypeJSON = "application/json"
)

// Backend endpoints the session layer depends on. Resource endpoints live
// with the code that calls them.
const (
	LoginPath        = "/api/login"
	RegisterPath     = "/api/register"
	LogoutPath       = "/api/logout"
	TokenRefreshPath = "/api/token/refresh"
)

// Keys of the persisted session record.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyExpiresAt    = "expires_at"
	KeyUserID       = "user_id"
	KeyUsername     = "username"
	KeyEmail        = "email"
	KeyFullName     = "full_name"
	KeyAvatar       = "avatar"
	KeyIsAdmin      = "is_admin"
	KeyIsModerator  = "is_moderator"
	KeyIsMentor     = "is_mentor"
)

// Lockout state is kept apart from the session record so that clearing a
// session does not lift an active lockout.
const (
	KeyLoginAttempts = "login_attempts"
	KeyLockoutUntil  = "lockout_until"
)

// SessionKeys lists every key of the session record.
var SessionKeys = []string{
	KeyAccessToken, KeyRefreshToken, KeyExpiresAt,
	KeyUserID, KeyUsername, KeyEmail, KeyFullName, KeyAvatar,
	KeyIsAdmin, KeyIsModerator, KeyIsMentor,
}
