package models

// FAQ is an entry managed through the admin content panel.
type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IsActive bool   `json:"is_active"`
}

// FAQRequest is the payload for FAQ create/update.
type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	IsActive bool   `json:"is_active"`
}
