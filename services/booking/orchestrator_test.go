package booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"driveline/backend"
	"driveline/models"

	"go.uber.org/zap"
)

// staticAuth resolves a fixed user (or none) regardless of token.
type staticAuth struct {
	user *models.User
}

func (a staticAuth) CurrentUser(context.Context, string) (*models.User, error) {
	if a.user == nil {
		return nil, errors.New("no active session")
	}
	return a.user, nil
}

// recordingScheduler captures reminder scheduling calls.
type recordingScheduler struct {
	calls int
}

func (r *recordingScheduler) ScheduleLessonReminder(context.Context, int, time.Time, models.Booking) error {
	r.calls++
	return nil
}

// fakeBackend is an httptest stand-in for the booking API that counts calls
// per endpoint and serves scripted responses.
type fakeBackend struct {
	mu sync.Mutex

	sessionStatus int
	sessionBody   string
	bookingStatus int
	bookingBody   string

	sessionCalls int
	bookingCalls int
	totalCalls   int
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /class_sessions/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.sessionCalls++
		f.totalCalls++
		f.mu.Unlock()
		w.WriteHeader(f.sessionStatus)
		w.Write([]byte(f.sessionBody))
	})
	mux.HandleFunc("POST /bookings/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.bookingCalls++
		f.totalCalls++
		f.mu.Unlock()
		w.WriteHeader(f.bookingStatus)
		w.Write([]byte(f.bookingBody))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.totalCalls++
		f.mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
	})
	return mux
}

func completedDraft() models.BookingDraft {
	return models.BookingDraft{
		WizardID:     "w1",
		Step:         models.StepReviewConfirm,
		CourseID:     1,
		InstructorID: 1,
		Date:         "2025-07-10",
		Time:         "09:00",
		Duration:     "90",
		PhoneNumber:  "0400000000",
		Suburb:       "Chisholm",
	}
}

func newTestOrchestrator(t *testing.T, fb *fakeBackend, user *models.User, store DraftStore) (*Orchestrator, *recordingScheduler) {
	t.Helper()
	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, srv.Client())
	reminders := &recordingScheduler{}
	return &Orchestrator{
		Sessions:  client,
		Bookings:  client,
		Auth:      staticAuth{user: user},
		Drafts:    store,
		Reminders: reminders,
		Logger:    zap.NewNop(),
	}, reminders
}

func TestConfirmUnauthenticatedMakesNoCalls(t *testing.T) {
	fb := &fakeBackend{}
	store := newMemoryDraftStore()
	store.Save(context.Background(), completedDraft())

	orch, _ := newTestOrchestrator(t, fb, nil, store)

	_, err := orch.Confirm(context.Background(), "w1", "")
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("Confirm() error = %v, want ErrNotAuthenticated", err)
	}
	if fb.totalCalls != 0 {
		t.Errorf("made %d backend calls, want 0", fb.totalCalls)
	}
}

func TestConfirmSessionFailureSkipsBooking(t *testing.T) {
	fb := &fakeBackend{sessionStatus: http.StatusInternalServerError, sessionBody: `{"detail":"boom"}`}
	store := newMemoryDraftStore()
	store.Save(context.Background(), completedDraft())

	orch, _ := newTestOrchestrator(t, fb, &models.User{ID: 11, Role: models.RoleStudent}, store)

	_, err := orch.Confirm(context.Background(), "w1", "tok")
	if err == nil {
		t.Fatal("Confirm() succeeded, want error")
	}
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		t.Fatalf("Confirm() error = %v, want generic (not conflict)", err)
	}
	if fb.bookingCalls != 0 {
		t.Errorf("booking endpoint called %d times after session failure, want 0", fb.bookingCalls)
	}
	if _, err := store.Get(context.Background(), "w1"); err != nil {
		t.Errorf("draft discarded on failure; it must stay for retry")
	}
}

func TestConfirmMapsScheduleConflict(t *testing.T) {
	fb := &fakeBackend{
		sessionStatus: http.StatusBadRequest,
		sessionBody:   `{"detail":"Instructor already has a class at this time"}`,
	}
	store := newMemoryDraftStore()
	store.Save(context.Background(), completedDraft())

	orch, _ := newTestOrchestrator(t, fb, &models.User{ID: 11, Role: models.RoleStudent}, store)

	_, err := orch.Confirm(context.Background(), "w1", "tok")
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Confirm() error = %v, want *ConflictError", err)
	}
	if fb.bookingCalls != 0 {
		t.Errorf("booking endpoint called %d times on conflict, want 0", fb.bookingCalls)
	}
}

func TestConfirmBookingFailureLeavesOrphan(t *testing.T) {
	fb := &fakeBackend{
		sessionStatus: http.StatusCreated,
		sessionBody:   `{"id":42,"course_id":1,"instructor_id":1,"date_time":"2025-07-10T09:00:00","duration":90,"is_active":true}`,
		bookingStatus: http.StatusInternalServerError,
		bookingBody:   `{"detail":"boom"}`,
	}
	store := newMemoryDraftStore()
	store.Save(context.Background(), completedDraft())

	orch, reminders := newTestOrchestrator(t, fb, &models.User{ID: 11, Role: models.RoleStudent}, store)

	_, err := orch.Confirm(context.Background(), "w1", "tok")
	if err == nil {
		t.Fatal("Confirm() succeeded, want error")
	}
	if fb.sessionCalls != 1 || fb.bookingCalls != 1 {
		t.Errorf("calls = (%d sessions, %d bookings), want (1, 1)", fb.sessionCalls, fb.bookingCalls)
	}
	if reminders.calls != 0 {
		t.Errorf("reminder scheduled on failed booking")
	}
}

func TestConfirmSuccess(t *testing.T) {
	fb := &fakeBackend{
		sessionStatus: http.StatusCreated,
		sessionBody:   `{"id":42,"course_id":1,"instructor_id":1,"date_time":"2025-07-10T09:00:00","duration":90,"is_active":true}`,
		bookingStatus: http.StatusCreated,
		bookingBody:   `{"id":7,"student_id":11,"class_id":42,"status":"pending","remarks":"pending"}`,
	}
	store := newMemoryDraftStore()
	store.Save(context.Background(), completedDraft())

	orch, reminders := newTestOrchestrator(t, fb, &models.User{ID: 11, Role: models.RoleStudent}, store)

	booking, err := orch.Confirm(context.Background(), "w1", "tok")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if booking.ID != 7 || booking.ClassID != 42 {
		t.Errorf("booking = %+v, want id 7 referencing class 42", booking)
	}
	if fb.sessionCalls != 1 || fb.bookingCalls != 1 {
		t.Errorf("calls = (%d sessions, %d bookings), want (1, 1)", fb.sessionCalls, fb.bookingCalls)
	}
	if _, err := store.Get(context.Background(), "w1"); !errors.Is(err, ErrWizardNotFound) {
		t.Errorf("draft not discarded after success")
	}
	if reminders.calls != 1 {
		t.Errorf("reminder scheduled %d times, want 1", reminders.calls)
	}
}

func TestConfirmIncompleteDraft(t *testing.T) {
	fb := &fakeBackend{}
	store := newMemoryDraftStore()
	draft := completedDraft()
	draft.PhoneNumber = "   "
	store.Save(context.Background(), draft)

	orch, _ := newTestOrchestrator(t, fb, &models.User{ID: 11, Role: models.RoleStudent}, store)

	_, err := orch.Confirm(context.Background(), "w1", "tok")
	if !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("Confirm() error = %v, want ErrDraftIncomplete", err)
	}
	if fb.totalCalls != 0 {
		t.Errorf("made %d backend calls for an incomplete draft, want 0", fb.totalCalls)
	}
}
