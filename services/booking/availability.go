package booking

import "driveline/models"

// BookedSessionsForDate returns the catalog sessions that collide with the
// given (date, instructor) selection: active sessions whose UTC calendar
// date equals date and whose instructor matches. Catalog order is preserved.
//
// The result is advisory only: it tells the user which times to avoid; the
// backend remains the authority on conflict rejection.
func BookedSessionsForDate(catalog []models.ClassSession, date string, instructorID int) []models.ClassSession {
	if date == "" {
		return nil
	}

	var booked []models.ClassSession
	for _, session := range catalog {
		if !session.IsActive || session.InstructorID != instructorID {
			continue
		}
		if session.CalendarDate() == date {
			booked = append(booked, session)
		}
	}
	return booked
}
