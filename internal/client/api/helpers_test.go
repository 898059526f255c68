package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// ---- fake backend ----

type testServer struct {
	*httptest.Server
	Router *mux.Router

	mu   sync.Mutex
	hits map[string]int
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{Router: mux.NewRouter(), hits: map[string]int{}}
	ts.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ts.mu.Lock()
			ts.hits[r.Method+" "+r.URL.Path]++
			ts.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})
	ts.Server = httptest.NewServer(ts.Router)
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) Hits(key string) int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.hits[key]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- session wiring ----

type navRecorder struct {
	mu      sync.Mutex
	reasons []session.LogoutReason
}

func (n *navRecorder) ToEntry(r session.LogoutReason) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reasons = append(n.reasons, r)
}

func (n *navRecorder) Reasons() []session.LogoutReason {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]session.LogoutReason(nil), n.reasons...)
}

func testSettings(maxAttempts int) session.Settings {
	s := session.DefaultSettings()
	s.IdleTimeout = 0
	s.RefreshInterval = 0
	s.MaxLoginAttempts = maxAttempts
	return s
}

func newTestClient(t *testing.T, ts *testServer, opts ...Option) (*Client, *session.Manager, *navRecorder) {
	t.Helper()
	nav := &navRecorder{}
	mgr := session.NewManager(storage.NewMemoryStore(), NewBackend(ts.URL, opts...),
		session.WithSettings(testSettings(5)),
		session.WithNavigator(nav),
	)
	t.Cleanup(mgr.Close)
	return NewClient(ts.URL, mgr, opts...), mgr, nav
}

func loginAs(t *testing.T, mgr *session.Manager, access, refresh string) {
	t.Helper()
	v := mgr.SetAuthData(context.Background(), &session.AuthPayload{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    3600,
		UserID:       "1",
		Username:     "alice",
	})
	require.NotNil(t, v)
}

func bearer(r *http.Request) string {
	const p = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) > len(p) && h[:len(p)] == p {
		return h[len(p):]
	}
	return ""
}
