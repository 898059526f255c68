// Package cli provides the interactive gophsocial command-line client.
//
// App ties a session.Manager, the api.Client used for login and
// registration, and the social.Service for everything else to a small REPL.
// The App is also the session's Navigator: when the session ends, for any
// reason, the REPL prints why and drops back to the logged-out prompt.
//
// Every command counts as user activity and postpones the idle logout.
// While logged in, a background poller keeps the unread-notification badge
// in the prompt up to date.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
