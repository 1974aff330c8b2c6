package backend

import (
	"context"
	"fmt"
	"net/http"

	"driveline/models"
)

// ReviewAPI covers the review/testimonial endpoints.
type ReviewAPI interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, id int) error
}

func (c *Client) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error) {
	var created models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews/", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteReview(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), nil, nil, nil)
}
