package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"driveline/models"
)

func TestAPIErrorPreservesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Instructor already has a class at this time"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.CreateClassSession(context.Background(), models.CreateClassSessionRequest{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusBadRequest)
	}
	if !strings.Contains(apiErr.Body, "already has a class") {
		t.Errorf("Body = %q, expected the conflict marker to survive", apiErr.Body)
	}
}

func TestCreateClassSessionWireFormat(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/class_sessions/" {
			t.Errorf("request = %s %s, want POST /class_sessions/", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":9}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	created, err := client.CreateClassSession(context.Background(), models.CreateClassSessionRequest{
		CourseID:     1,
		InstructorID: 2,
		DateTime:     models.SessionDateTime("2025-07-10", "09:00"),
		Duration:     90,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("CreateClassSession() error = %v", err)
	}
	if created.ID != 9 {
		t.Errorf("created.ID = %d, want 9", created.ID)
	}

	for _, fragment := range []string{
		`"course_id":1`,
		`"instructor_id":2`,
		`"date_time":"2025-07-10T09:00:00"`,
		`"duration":90`,
		`"is_active":true`,
	} {
		if !strings.Contains(gotBody, fragment) {
			t.Errorf("request body %q missing %q", gotBody, fragment)
		}
	}
}

func TestUpdateBookingStatusQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/bookings/7/status" {
			t.Errorf("request = %s %s, want PATCH /bookings/7/status", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("status"); got != "confirmed" {
			t.Errorf("status = %q, want %q", got, "confirmed")
		}
		w.Write([]byte(`{"id":7,"status":"confirmed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	updated, err := client.UpdateBookingStatus(context.Background(), 7, "confirmed")
	if err != nil {
		t.Fatalf("UpdateBookingStatus() error = %v", err)
	}
	if updated.Status != "confirmed" {
		t.Errorf("Status = %q, want %q", updated.Status, "confirmed")
	}
}
