package models

import "time"

// sessionTimeLayout matches the backend wire format: an ISO-8601 timestamp
// without an offset ("{date}T{time}:00"). Timestamps are always interpreted
// as UTC so displayed times stay consistent regardless of the viewer's
// timezone.
const sessionTimeLayout = "2006-01-02T15:04:05"

// ClassSession is one bookable time block for an instructor. Created as a
// side effect of a confirmed booking; never mutated or deleted by this
// service (deactivation is the backend's concern).
type ClassSession struct {
	ID           int    `json:"id"`
	CourseID     int    `json:"course_id"`
	InstructorID int    `json:"instructor_id"`
	DateTime     string `json:"date_time"`
	Duration     int    `json:"duration"` // minutes
	IsActive     bool   `json:"is_active"`
}

// StartTime parses the session timestamp as UTC.
func (s ClassSession) StartTime() (time.Time, error) {
	return time.ParseInLocation(sessionTimeLayout, s.DateTime, time.UTC)
}

// CalendarDate returns the UTC calendar date ("YYYY-MM-DD") of the session
// start, or an empty string if the timestamp cannot be parsed.
func (s ClassSession) CalendarDate() string {
	t, err := s.StartTime()
	if err != nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// SessionDateTime composes a wire-format timestamp from an ISO calendar date
// ("YYYY-MM-DD") and a 24-hour local time ("HH:MM").
func SessionDateTime(date, clock string) string {
	return date + "T" + clock + ":00"
}

// CreateClassSessionRequest is the payload for POST /class_sessions/.
type CreateClassSessionRequest struct {
	CourseID     int    `json:"course_id"`
	InstructorID int    `json:"instructor_id"`
	DateTime     string `json:"date_time"`
	Duration     int    `json:"duration"`
	IsActive     bool   `json:"is_active"`
}
