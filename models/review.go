package models

// Review is a student testimonial shown on the marketing pages.
type Review struct {
	ID        int    `json:"id"`
	StudentID int    `json:"student_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreateReviewRequest is the payload for POST /reviews/.
type CreateReviewRequest struct {
	StudentID int    `json:"student_id"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}
