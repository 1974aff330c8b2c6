package handlers

import "driveline/services/auth"

// HandlerBundle groups everything route registration needs.
type HandlerBundle struct {
	AuthService *auth.Service

	Auth      *AuthHandler
	Booking   *BookingHandler
	Dashboard *DashboardHandler
	Content   *ContentHandler
	Device    *DeviceHandler
	Storage   *StorageHandler
}
