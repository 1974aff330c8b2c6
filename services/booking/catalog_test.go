package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"driveline/backend"

	"go.uber.org/zap"
)

func TestLoadActiveSessionsEmptyOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	catalog := &CatalogService{
		Sessions: backend.NewClient(srv.URL, srv.Client()),
		Limit:    100,
		Logger:   zap.NewNop(),
	}

	sessions := catalog.LoadActiveSessions(context.Background())
	if len(sessions) != 0 {
		t.Errorf("got %d sessions on failure, want empty catalog", len(sessions))
	}
}

func TestLoadActiveSessionsPassesThroughBackendOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("is_active"); got != "true" {
			t.Errorf("is_active = %q, want %q", got, "true")
		}
		if got := r.URL.Query().Get("limit"); got != "250" {
			t.Errorf("limit = %q, want %q", got, "250")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":5,"date_time":"2025-07-10T09:00:00"},{"id":2,"date_time":"2025-07-09T08:00:00"}]`))
	}))
	defer srv.Close()

	catalog := &CatalogService{
		Sessions: backend.NewClient(srv.URL, srv.Client()),
		Limit:    250,
		Logger:   zap.NewNop(),
	}

	sessions := catalog.LoadActiveSessions(context.Background())
	if len(sessions) != 2 || sessions[0].ID != 5 || sessions[1].ID != 2 {
		t.Errorf("sessions = %+v, want backend order [5 2]", sessions)
	}
}
