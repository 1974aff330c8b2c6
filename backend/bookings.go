package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"driveline/models"
)

// BookingAPI covers the booking endpoints.
type BookingAPI interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context, skip, limit int) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, status string) (*models.Booking, error)
}

// CreateBooking creates a booking referencing an already-created class session.
func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var created models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListBookings pages through bookings for the instructor/admin dashboards.
func (c *Client) ListBookings(ctx context.Context, skip, limit int) ([]models.Booking, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/", query, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus patches a booking's status. Status strings are opaque
// pass-through values.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status string) (*models.Booking, error) {
	query := url.Values{}
	query.Set("status", status)

	var updated models.Booking
	path := fmt.Sprintf("/bookings/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, query, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
