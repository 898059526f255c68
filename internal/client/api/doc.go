// Package api is the client's HTTP layer.
//
// Client sends requests to the backend on behalf of a session.Manager. It
// attaches the bearer token, coalesces identical in-flight requests, refreshes
// the token once on 401 before giving up and logging out, and honors
// Retry-After on 429. Login and Register sit on top of it and drive the
// manager's lockout and session state.
//
// Backend implements session.Backend (token refresh and server logout) over
// the same transport, so a Manager can be built before the Client that uses it:
//
//	backend := api.NewBackend(baseURL)
//	mgr := session.NewManager(store, backend)
//	client := api.NewClient(baseURL, mgr)
package api
