package backend

import (
	"context"
	"fmt"
	"net/http"

	"driveline/models"
)

// FAQAPI covers the FAQ content endpoints used by the admin panel.
type FAQAPI interface {
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
	CreateFAQ(ctx context.Context, req models.FAQRequest) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, id int, req models.FAQRequest) (*models.FAQ, error)
	DeleteFAQ(ctx context.Context, id int) error
}

func (c *Client) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	var faqs []models.FAQ
	if err := c.do(ctx, http.MethodGet, "/faqs/", nil, nil, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (c *Client) CreateFAQ(ctx context.Context, req models.FAQRequest) (*models.FAQ, error) {
	var created models.FAQ
	if err := c.do(ctx, http.MethodPost, "/faqs/", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateFAQ(ctx context.Context, id int, req models.FAQRequest) (*models.FAQ, error) {
	var updated models.FAQ
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/faqs/%d", id), nil, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteFAQ(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/faqs/%d", id), nil, nil, nil)
}
