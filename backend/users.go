package backend

import (
	"context"
	"fmt"
	"net/http"

	"driveline/models"
)

// UserAPI covers the user endpoints. Credential verification belongs to the
// backend; this client only forwards it.
type UserAPI interface {
	Authenticate(ctx context.Context, creds models.Credentials) (*models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
}

func (c *Client) Authenticate(ctx context.Context, creds models.Credentials) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/users/authenticate", nil, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
