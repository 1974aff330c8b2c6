package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"driveline/backend"
	"driveline/models"

	"go.uber.org/zap"
)

// CurrentUserProvider resolves the logged-in user for a request token.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// ReminderScheduler queues a lesson reminder for a confirmed booking.
// Scheduling is best-effort and never affects the booking result.
type ReminderScheduler interface {
	ScheduleLessonReminder(ctx context.Context, studentID int, lessonAt time.Time, booking models.Booking) error
}

// Orchestrator turns a completed draft into two strictly ordered backend
// writes: create the class session, then create the booking referencing it.
// There is no compensating delete; if the booking write fails, the session
// from the first write is left orphaned. That gap is inherited behavior and
// is logged rather than silently repaired.
type Orchestrator struct {
	Sessions  backend.SessionAPI
	Bookings  backend.BookingAPI
	Auth      CurrentUserProvider
	Drafts    DraftStore
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

// Confirm submits the draft identified by wizardID on behalf of the user
// identified by token. Exactly zero or two creation calls are issued per
// attempt. On any failure the draft is left intact so the user can retry.
func (o *Orchestrator) Confirm(ctx context.Context, wizardID, token string) (*models.Booking, error) {
	user, err := o.Auth.CurrentUser(ctx, token)
	if err != nil || user == nil {
		return nil, ErrNotAuthenticated
	}

	draft, err := o.Drafts.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	if !StepValid(*draft, models.StepSchedule) || !StepValid(*draft, models.StepContactDetail) {
		return nil, ErrDraftIncomplete
	}

	minutes, err := draft.DurationMinutes()
	if err != nil {
		return nil, ErrDraftIncomplete
	}

	session, err := o.Sessions.CreateClassSession(ctx, models.CreateClassSessionRequest{
		CourseID:     draft.CourseID,
		InstructorID: draft.InstructorID,
		DateTime:     models.SessionDateTime(draft.Date, draft.Time),
		Duration:     minutes,
		IsActive:     true,
	})
	if err != nil {
		if isScheduleConflict(err) {
			return nil, &ConflictError{Detail: err.Error()}
		}
		return nil, fmt.Errorf("failed to create class session: %w", err)
	}

	booking, err := o.Bookings.CreateBooking(ctx, models.CreateBookingRequest{
		StudentID:         user.ID,
		ClassID:           session.ID,
		PhoneNo:           strings.TrimSpace(draft.PhoneNumber),
		Suburb:            strings.TrimSpace(draft.Suburb),
		AdditionalMessage: draft.AdditionalMessage,
		Status:            "pending",
		Remarks:           "pending",
	})
	if err != nil {
		// The session created above has no booking referencing it now.
		o.Logger.Warn("booking creation failed after class session was created; session left orphaned",
			zap.Int("classSessionId", session.ID),
			zap.String("wizardId", wizardID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := o.Drafts.Delete(ctx, wizardID); err != nil {
		o.Logger.Warn("failed to discard confirmed booking draft", zap.String("wizardId", wizardID), zap.Error(err))
	}

	if o.Reminders != nil {
		if lessonAt, perr := session.StartTime(); perr == nil {
			if rerr := o.Reminders.ScheduleLessonReminder(ctx, user.ID, lessonAt, *booking); rerr != nil {
				o.Logger.Warn("failed to schedule lesson reminder", zap.Int("bookingId", booking.ID), zap.Error(rerr))
			}
		}
	}

	return booking, nil
}
