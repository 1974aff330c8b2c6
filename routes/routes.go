package routes

import (
	"net/http"
	"time"

	"driveline/handlers"
	"driveline/middleware"
	"driveline/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login/logout/me endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)

		api.Use(middleware.AuthMiddleware(hb.AuthService))
		api.POST("/logout", hb.Auth.Logout)
		api.GET("/me", hb.Auth.Me)
	}
}

// RegisterBookingRoutes sets up the quick-booking wizard endpoints. Starting
// and filling the wizard is open; confirmation requires a logged-in student
// (the orchestrator rejects unauthenticated submits before any backend call).
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizard := r.Group("/api/booking/wizard")
	{
		wizard.POST("", hb.Booking.StartWizard)
		wizard.GET("/:wizardID", hb.Booking.GetWizard)
		wizard.PATCH("/:wizardID", hb.Booking.UpdateWizard)
		wizard.POST("/:wizardID/next", hb.Booking.NextStep)
		wizard.POST("/:wizardID/previous", hb.Booking.PreviousStep)
		wizard.GET("/:wizardID/availability", hb.Booking.Availability)
		wizard.GET("/:wizardID/quote", hb.Booking.Quote)
		wizard.DELETE("/:wizardID", hb.Booking.CancelWizard)

		wizard.POST("/:wizardID/confirm", middleware.AuthMiddleware(hb.AuthService), hb.Booking.ConfirmWizard)
	}

	r.GET("/api/sessions", hb.Booking.ListSessions)
}

// RegisterDashboardRoutes gates the booking views behind instructor role
// (admins pass every role gate).
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthService), middleware.RequireRole(models.RoleInstructor))
		api.GET("", hb.Dashboard.ListBookings)
		api.PATCH("/:id/status", hb.Dashboard.UpdateBookingStatus)
	}
}

// RegisterContentRoutes registers FAQ, course and review endpoints. Reads are
// public; FAQ writes are admin-only, review creation needs a login.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/faqs", hb.Content.ListFAQs)
	r.GET("/api/courses", hb.Content.ListCourses)
	r.GET("/api/courses/:id", hb.Content.GetCourse)
	r.GET("/api/reviews", hb.Content.ListReviews)

	faqAdmin := r.Group("/api/faqs")
	{
		faqAdmin.Use(middleware.AuthMiddleware(hb.AuthService), middleware.RequireRole(models.RoleAdmin))
		faqAdmin.POST("", hb.Content.CreateFAQ)
		faqAdmin.PUT("/:id", hb.Content.UpdateFAQ)
		faqAdmin.DELETE("/:id", hb.Content.DeleteFAQ)
	}

	reviews := r.Group("/api/reviews")
	{
		reviews.Use(middleware.AuthMiddleware(hb.AuthService))
		reviews.POST("", middleware.RequireRole(models.RoleStudent), hb.Content.CreateReview)
		reviews.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), hb.Content.DeleteReview)
	}

	upload := r.Group("/api/content")
	{
		upload.Use(middleware.AuthMiddleware(hb.AuthService), middleware.RequireRole(models.RoleAdmin))
		upload.POST("/upload", hb.Storage.UploadImage)
		upload.DELETE("/upload", hb.Storage.DeleteImage)
	}
}

// RegisterDeviceRoutes registers the push notification token lifecycle.
func RegisterDeviceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/devices")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthService))
		api.PUT("/token", hb.Device.RegisterToken)
		api.GET("/token", hb.Device.CurrentToken)
		api.DELETE("/token", hb.Device.RevokeToken)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "driveline"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterDeviceRoutes(r, hb)
	RegisterHealthRoute(r)
}
