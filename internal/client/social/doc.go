// Package social wraps the backend's resource endpoints (feed, posts,
// comments, profiles, notifications, search, statistics, administration)
// in typed calls. Every call goes through a Requester, normally an
// *api.Client, so the session's auth and retry policy applies.
package social
