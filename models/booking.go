package models

// Booking is the server-owned booking record. This service only creates
// bookings and passes status strings through for display; it does not
// interpret them beyond formatting.
type Booking struct {
	ID                int    `json:"id"`
	StudentID         int    `json:"student_id"`
	ClassID           int    `json:"class_id"`
	PhoneNo           string `json:"phone_no"`
	Suburb            string `json:"suburb"`
	AdditionalMessage string `json:"additional_message"`
	Status            string `json:"status"`
	Remarks           string `json:"remarks"`
	CreatedAt         string `json:"created_at,omitempty"`
}

// CreateBookingRequest is the payload for POST /bookings/.
type CreateBookingRequest struct {
	StudentID         int    `json:"student_id"`
	ClassID           int    `json:"class_id"`
	PhoneNo           string `json:"phone_no"`
	Suburb            string `json:"suburb"`
	AdditionalMessage string `json:"additional_message"`
	Status            string `json:"status"`
	Remarks           string `json:"remarks"`
}
