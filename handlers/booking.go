package handlers

import (
	"errors"
	"net/http"

	"driveline/middleware"
	"driveline/models"
	"driveline/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the quick-booking wizard over HTTP.
type BookingHandler struct {
	Wizard       *booking.WizardService
	Catalog      *booking.CatalogService
	Orchestrator *booking.Orchestrator
	Logger       *zap.Logger
}

func NewBookingHandler(wizard *booking.WizardService, catalog *booking.CatalogService, orchestrator *booking.Orchestrator, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Wizard:       wizard,
		Catalog:      catalog,
		Orchestrator: orchestrator,
		Logger:       logger,
	}
}

// wizardView is the draft plus derived state the UI renders on every step.
type wizardView struct {
	Draft      models.BookingDraft `json:"draft"`
	CanProceed bool                `json:"canProceed"`
	Quote      *booking.PriceQuote `json:"quote,omitempty"`
}

func (h *BookingHandler) view(draft *models.BookingDraft) wizardView {
	v := wizardView{
		Draft:      *draft,
		CanProceed: booking.StepValid(*draft, draft.Step),
	}
	// The derived price is shown on the schedule and review steps.
	if minutes, err := draft.DurationMinutes(); err == nil {
		quote := booking.CalculatePrice(minutes)
		v.Quote = &quote
	}
	return v
}

// StartWizard begins a new quick-booking wizard at the schedule step.
func (h *BookingHandler) StartWizard(c *gin.Context) {
	draft, err := h.Wizard.Start(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to start booking wizard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start booking"})
		return
	}
	c.JSON(http.StatusCreated, h.view(draft))
}

// GetWizard returns the current draft and derived state.
func (h *BookingHandler) GetWizard(c *gin.Context) {
	draft, err := h.Wizard.Get(c.Request.Context(), c.Param("wizardID"))
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(draft))
}

// UpdateWizard merges field updates from the current step into the draft.
func (h *BookingHandler) UpdateWizard(c *gin.Context) {
	var upd models.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	draft, err := h.Wizard.Update(c.Request.Context(), c.Param("wizardID"), upd)
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(draft))
}

// NextStep advances the wizard when the current step is valid; otherwise the
// response simply shows the unchanged step.
func (h *BookingHandler) NextStep(c *gin.Context) {
	draft, err := h.Wizard.Next(c.Request.Context(), c.Param("wizardID"))
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(draft))
}

// PreviousStep retreats one step.
func (h *BookingHandler) PreviousStep(c *gin.Context) {
	draft, err := h.Wizard.Previous(c.Request.Context(), c.Param("wizardID"))
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(draft))
}

// CancelWizard discards an abandoned draft.
func (h *BookingHandler) CancelWizard(c *gin.Context) {
	if err := h.Wizard.Cancel(c.Request.Context(), c.Param("wizardID")); err != nil {
		h.Logger.Warn("failed to cancel booking wizard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Availability lists the sessions already booked for the draft's selected
// date and instructor, the "avoid these times" list. Advisory only.
func (h *BookingHandler) Availability(c *gin.Context) {
	draft, err := h.Wizard.Get(c.Request.Context(), c.Param("wizardID"))
	if err != nil {
		h.respondDraftError(c, err)
		return
	}

	catalog := h.Catalog.LoadActiveSessions(c.Request.Context())
	booked := booking.BookedSessionsForDate(catalog, draft.Date, draft.InstructorID)
	c.JSON(http.StatusOK, gin.H{"date": draft.Date, "bookedSessions": booked})
}

// Quote returns the derived price for the draft's selected duration, with
// two-decimal display strings.
func (h *BookingHandler) Quote(c *gin.Context) {
	draft, err := h.Wizard.Get(c.Request.Context(), c.Param("wizardID"))
	if err != nil {
		h.respondDraftError(c, err)
		return
	}

	minutes, err := draft.DurationMinutes()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No lesson duration selected"})
		return
	}

	quote := booking.CalculatePrice(minutes)
	c.JSON(http.StatusOK, gin.H{
		"total":             quote.Total,
		"discounted":        quote.Discounted,
		"displayTotal":      quote.DisplayTotal(),
		"displayDiscounted": quote.DisplayDiscounted(),
	})
}

// ConfirmWizard submits the completed draft: class session first, then the
// booking referencing it. On success the client is pointed at the dashboard.
func (h *BookingHandler) ConfirmWizard(c *gin.Context) {
	token, _ := c.Get(middleware.ContextTokenKey)
	tokenStr, _ := token.(string)

	result, err := h.Orchestrator.Confirm(c.Request.Context(), c.Param("wizardID"), tokenStr)
	if err != nil {
		var conflict *booking.ConflictError
		switch {
		case errors.Is(err, booking.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to book a lesson", "redirect": "/login"})
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
		case errors.Is(err, booking.ErrWizardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking session expired, please start again"})
		case errors.Is(err, booking.ErrDraftIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please complete all booking details first"})
		default:
			h.Logger.Error("booking confirmation failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Booking failed. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": result, "redirect": "/dashboard"})
}

// ListSessions exposes the active session catalog directly (marketing pages
// show instructor schedules).
func (h *BookingHandler) ListSessions(c *gin.Context) {
	sessions := h.Catalog.LoadActiveSessions(c.Request.Context())
	if sessions == nil {
		sessions = []models.ClassSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *BookingHandler) respondDraftError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrWizardNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking session expired, please start again"})
		return
	}
	h.Logger.Error("booking wizard error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}
