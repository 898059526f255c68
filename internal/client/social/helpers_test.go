package social

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/gophsocial/internal/client/api"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// newTestService wires a Service to an authenticated client talking to a
// mux router the test fills in.
func newTestService(t *testing.T) (*Service, *mux.Router) {
	t.Helper()
	router := mux.NewRouter()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	s := session.DefaultSettings()
	s.IdleTimeout, s.RefreshInterval = 0, 0
	mgr := session.NewManager(storage.NewMemoryStore(), api.NewBackend(srv.URL), session.WithSettings(s))
	t.Cleanup(mgr.Close)
	require.NotNil(t, mgr.SetAuthData(context.Background(), &session.AuthPayload{
		AccessToken: "tok", ExpiresIn: 3600, Username: "alice",
	}))

	return New(api.NewClient(srv.URL, mgr)), router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
