package booking

import (
	"context"
	"strings"
	"time"

	"driveline/config"
	"driveline/models"

	"github.com/google/uuid"
)

// DraftStore keeps in-flight wizard drafts. Production uses Redis; tests may
// substitute an in-memory store.
type DraftStore interface {
	Save(ctx context.Context, draft models.BookingDraft) error
	Get(ctx context.Context, wizardID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, wizardID string) error
}

// WizardService drives the three-step quick-booking wizard:
// Schedule -> Contact Details -> Review & Confirm.
type WizardService struct {
	Drafts DraftStore

	// now is swappable in tests.
	now func() time.Time
}

func NewWizardService(drafts DraftStore) *WizardService {
	return &WizardService{Drafts: drafts, now: time.Now}
}

// Start creates a fresh draft at step 1: date pre-filled to the current UTC
// date, duration pre-filled to the shortest offered lesson, everything else
// empty. Course and instructor are pinned to the quick-booking defaults.
func (s *WizardService) Start(ctx context.Context) (*models.BookingDraft, error) {
	now := s.now()
	draft := models.BookingDraft{
		WizardID:     uuid.New().String(),
		Step:         models.StepSchedule,
		CourseID:     config.AppConfig.DefaultCourseID,
		InstructorID: config.AppConfig.DefaultInstructorID,
		Date:         now.UTC().Format("2006-01-02"),
		Duration:     "60",
		CreatedAt:    now,
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Get returns the current draft.
func (s *WizardService) Get(ctx context.Context, wizardID string) (*models.BookingDraft, error) {
	return s.Drafts.Get(ctx, wizardID)
}

// Update merges the non-nil fields of upd into the draft and saves it.
// Updating never moves the step; navigation is explicit via Next/Previous.
func (s *WizardService) Update(ctx context.Context, wizardID string, upd models.DraftUpdate) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if upd.Date != nil {
		draft.Date = *upd.Date
	}
	if upd.Time != nil {
		draft.Time = *upd.Time
	}
	if upd.Duration != nil {
		draft.Duration = *upd.Duration
	}
	if upd.PhoneNumber != nil {
		draft.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Suburb != nil {
		draft.Suburb = *upd.Suburb
	}
	if upd.AdditionalMessage != nil {
		draft.AdditionalMessage = *upd.AdditionalMessage
	}

	if err := s.Drafts.Save(ctx, *draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Next advances the wizard iff the current step is valid and not the last.
// An invalid or final step is a silent no-op, not an error: the UI expresses
// non-progression through disabled controls.
func (s *WizardService) Next(ctx context.Context, wizardID string) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepReviewConfirm && StepValid(*draft, draft.Step) {
		draft.Step++
		if err := s.Drafts.Save(ctx, *draft); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// Previous retreats one step; a no-op on the first step.
func (s *WizardService) Previous(ctx context.Context, wizardID string) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	if draft.Step > models.StepSchedule {
		draft.Step--
		if err := s.Drafts.Save(ctx, *draft); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// Cancel discards an abandoned draft.
func (s *WizardService) Cancel(ctx context.Context, wizardID string) error {
	return s.Drafts.Delete(ctx, wizardID)
}

// StepValid reports whether the required fields for a step are filled in.
// Step 3 carries no fields of its own and is always valid.
func StepValid(draft models.BookingDraft, step int) bool {
	switch step {
	case models.StepSchedule:
		return draft.Date != "" && draft.Time != "" && draft.Duration != ""
	case models.StepContactDetail:
		return strings.TrimSpace(draft.PhoneNumber) != "" && strings.TrimSpace(draft.Suburb) != ""
	case models.StepReviewConfirm:
		return true
	}
	return false
}
