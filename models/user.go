package models

// Known user roles.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User is a driving school account: student, instructor or admin. Accounts
// are owned by the backend; this service only reads them.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	PhoneNo  string `json:"phone_no,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Credentials is the login payload forwarded to the backend.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
