package auth

import "driveline/models"

// CanAccess is the single authorization predicate for role-gated routes.
// Admins pass every gate; an empty requirement only demands a login. The
// redirect side effect stays in the routing middleware, not here.
func CanAccess(user *models.User, requiredRole string) bool {
	if user == nil {
		return false
	}
	if requiredRole == "" {
		return true
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.Role == requiredRole
}
