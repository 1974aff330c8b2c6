package models

import (
	"fmt"
	"strconv"
	"time"
)

// Wizard steps, in order. The flow is linear with no branching.
const (
	StepSchedule      = 1
	StepContactDetail = 2
	StepReviewConfirm = 3
)

// LessonDurations is the set of durations (minutes) offered by the booking
// wizard.
var LessonDurations = []int{60, 90, 120, 150, 180, 210, 240}

// BookingDraft accumulates user input across the booking wizard steps.
// Drafts live in the draft cache until confirmed or abandoned; nothing is
// persisted.
type BookingDraft struct {
	WizardID     string `json:"wizardId"`
	Step         int    `json:"step"`
	CourseID     int    `json:"courseId"`
	InstructorID int    `json:"instructorId"`

	// Step 1: schedule.
	Date     string `json:"date"`     // "YYYY-MM-DD"
	Time     string `json:"time"`     // "HH:MM", 24-hour
	Duration string `json:"duration"` // minutes as string, one of LessonDurations

	// Step 2: contact details.
	PhoneNumber       string `json:"phoneNumber"`
	Suburb            string `json:"suburb"`
	AdditionalMessage string `json:"additionalMessage"`

	CreatedAt time.Time `json:"createdAt"`
}

// DraftUpdate carries partial field updates from a wizard step; nil fields
// are left untouched.
type DraftUpdate struct {
	Date              *string `json:"date"`
	Time              *string `json:"time"`
	Duration          *string `json:"duration"`
	PhoneNumber       *string `json:"phoneNumber"`
	Suburb            *string `json:"suburb"`
	AdditionalMessage *string `json:"additionalMessage"`
}

// DurationMinutes parses the selected duration. The UI only offers values
// from LessonDurations, but a direct caller may pass anything numeric.
func (d BookingDraft) DurationMinutes() (int, error) {
	minutes, err := strconv.Atoi(d.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid lesson duration %q: %w", d.Duration, err)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("invalid lesson duration %q", d.Duration)
	}
	return minutes, nil
}
