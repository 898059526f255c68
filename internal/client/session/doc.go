// Package session owns the client's authentication state: who is logged
// in, with which tokens, until when, and with which permissions.
//
// A Manager is built explicitly and shared by everything that needs the
// session (the HTTP client, the CLI). It persists the session record into a
// storage.Store, keeps two timers while a session is live (idle logout and
// periodic token refresh), enforces the local login-attempt lockout, and
// notifies subscribers of login and logout.
//
// The Manager never talks HTTP itself. Token refresh and server-side logout
// go through a Backend, and the "go back to the entry screen" signal that
// follows a logout goes through a Navigator.
package session
