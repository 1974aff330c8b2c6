package backend

import (
	"context"
	"fmt"
	"net/http"

	"driveline/models"
)

// CourseAPI covers the course endpoints.
type CourseAPI interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int) (*models.Course, error)
}

func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/courses/", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", id), nil, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}
