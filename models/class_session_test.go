package models

import (
	"testing"
	"time"
)

func TestClassSessionTimestampsAreUTC(t *testing.T) {
	session := ClassSession{DateTime: "2025-07-10T23:30:00"}

	start, err := session.StartTime()
	if err != nil {
		t.Fatalf("StartTime() error = %v", err)
	}
	if start.Location() != time.UTC {
		t.Errorf("StartTime() location = %v, want UTC", start.Location())
	}
	// A late-evening UTC timestamp must stay on its UTC calendar date even
	// when the host timezone would roll it over.
	if got := session.CalendarDate(); got != "2025-07-10" {
		t.Errorf("CalendarDate() = %q, want %q", got, "2025-07-10")
	}
}

func TestCalendarDateUnparseable(t *testing.T) {
	session := ClassSession{DateTime: "10/07/2025 9am"}
	if got := session.CalendarDate(); got != "" {
		t.Errorf("CalendarDate() = %q, want empty", got)
	}
}

func TestSessionDateTimeComposition(t *testing.T) {
	if got := SessionDateTime("2025-07-10", "09:00"); got != "2025-07-10T09:00:00" {
		t.Errorf("SessionDateTime() = %q", got)
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		duration string
		want     int
		wantErr  bool
	}{
		{duration: "60", want: 60},
		{duration: "240", want: 240},
		{duration: "", wantErr: true},
		{duration: "abc", wantErr: true},
		{duration: "-30", wantErr: true},
	}
	for _, tt := range tests {
		draft := BookingDraft{Duration: tt.duration}
		got, err := draft.DurationMinutes()
		if (err != nil) != tt.wantErr {
			t.Errorf("DurationMinutes(%q) error = %v, wantErr %v", tt.duration, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("DurationMinutes(%q) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}
