package handlers

import (
	"net/http"
	"strconv"

	"driveline/backend"
	"driveline/middleware"
	"driveline/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the FAQ panel, courses and reviews. All of it is
// request/response pass-through to the backend.
type ContentHandler struct {
	FAQs    backend.FAQAPI
	Courses backend.CourseAPI
	Reviews backend.ReviewAPI
	Logger  *zap.Logger
}

func NewContentHandler(faqs backend.FAQAPI, courses backend.CourseAPI, reviews backend.ReviewAPI, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{FAQs: faqs, Courses: courses, Reviews: reviews, Logger: logger}
}

// ListFAQs is public (marketing pages).
func (h *ContentHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.FAQs.ListFAQs(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list FAQs", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load FAQs"})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

func (h *ContentHandler) CreateFAQ(c *gin.Context) {
	var req models.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.FAQs.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("failed to create FAQ", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not create FAQ"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler) UpdateFAQ(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ id"})
		return
	}
	var req models.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.FAQs.UpdateFAQ(c.Request.Context(), id, req)
	if err != nil {
		h.Logger.Error("failed to update FAQ", zap.Int("faqId", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not update FAQ"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ContentHandler) DeleteFAQ(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ id"})
		return
	}
	if err := h.FAQs.DeleteFAQ(c.Request.Context(), id); err != nil {
		h.Logger.Error("failed to delete FAQ", zap.Int("faqId", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not delete FAQ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListCourses is public.
func (h *ContentHandler) ListCourses(c *gin.Context) {
	courses, err := h.Courses.ListCourses(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list courses", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *ContentHandler) GetCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}
	course, err := h.Courses.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("failed to get course", zap.Int("courseId", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load course"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// ListReviews is public (testimonials).
func (h *ContentHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Reviews.ListReviews(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list reviews", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview posts a testimonial on behalf of the logged-in student.
func (h *ContentHandler) CreateReview(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in", "redirect": "/login"})
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.StudentID = user.ID

	created, err := h.Reviews.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("failed to create review", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not submit review"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler) DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return
	}
	if err := h.Reviews.DeleteReview(c.Request.Context(), id); err != nil {
		h.Logger.Error("failed to delete review", zap.Int("reviewId", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
