package booking

import (
	"testing"

	"driveline/models"
)

func TestBookedSessionsForDate(t *testing.T) {
	catalog := []models.ClassSession{
		{ID: 1, InstructorID: 1, DateTime: "2025-07-10T09:00:00", Duration: 60, IsActive: true},
		{ID: 2, InstructorID: 2, DateTime: "2025-07-10T10:00:00", Duration: 60, IsActive: true},
		{ID: 3, InstructorID: 1, DateTime: "2025-07-11T09:00:00", Duration: 60, IsActive: true},
		{ID: 4, InstructorID: 1, DateTime: "2025-07-10T14:00:00", Duration: 60, IsActive: false},
	}

	tests := []struct {
		name         string
		date         string
		instructorID int
		wantIDs      []int
	}{
		{name: "matching date and instructor, active only", date: "2025-07-10", instructorID: 1, wantIDs: []int{1}},
		{name: "other instructor", date: "2025-07-10", instructorID: 2, wantIDs: []int{2}},
		{name: "other date", date: "2025-07-11", instructorID: 1, wantIDs: []int{3}},
		{name: "no sessions that day", date: "2025-07-12", instructorID: 1, wantIDs: nil},
		{name: "unset date filters nothing", date: "", instructorID: 1, wantIDs: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booked := BookedSessionsForDate(catalog, tt.date, tt.instructorID)
			if len(booked) != len(tt.wantIDs) {
				t.Fatalf("got %d sessions, want %d", len(booked), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if booked[i].ID != want {
					t.Errorf("booked[%d].ID = %d, want %d", i, booked[i].ID, want)
				}
			}
		})
	}
}

func TestBookedSessionsPreservesCatalogOrder(t *testing.T) {
	catalog := []models.ClassSession{
		{ID: 9, InstructorID: 1, DateTime: "2025-07-10T15:00:00", IsActive: true},
		{ID: 3, InstructorID: 1, DateTime: "2025-07-10T08:00:00", IsActive: true},
	}

	booked := BookedSessionsForDate(catalog, "2025-07-10", 1)
	if len(booked) != 2 || booked[0].ID != 9 || booked[1].ID != 3 {
		t.Errorf("catalog order not preserved: %+v", booked)
	}
}

func TestBookedSessionsSkipsUnparseableTimestamps(t *testing.T) {
	catalog := []models.ClassSession{
		{ID: 1, InstructorID: 1, DateTime: "not-a-timestamp", IsActive: true},
		{ID: 2, InstructorID: 1, DateTime: "2025-07-10T09:00:00", IsActive: true},
	}

	booked := BookedSessionsForDate(catalog, "2025-07-10", 1)
	if len(booked) != 1 || booked[0].ID != 2 {
		t.Errorf("got %+v, want only session 2", booked)
	}
}
