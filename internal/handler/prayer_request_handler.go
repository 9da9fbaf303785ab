package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"arklight/internal/domain"
	"arklight/internal/models"
	"arklight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PrayerRequestHandler struct {
	repo *repository.PrayerRequestRepository
}

func NewPrayerRequestHandler(repo *repository.PrayerRequestRepository) *PrayerRequestHandler {
	return &PrayerRequestHandler{repo: repo}
}

type prayerSubmission struct {
	UserName   string `json:"user_name" binding:"required"`
	UserEmail  string `json:"user_email" binding:"required,email"`
	UserAvatar string `json:"user_avatar"`
	Subject    string `json:"subject" binding:"required"`
	Body       string `json:"body" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Priority   string `json:"priority" binding:"required"`
}

type respondRequest struct {
	Response  string `json:"response" binding:"required"`
	AdminName string `json:"admin_name" binding:"required"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *PrayerRequestHandler) List(c *gin.Context) {
	requests, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// Create records a submission coming from the app. Requests start
// Pending; viewing them never changes status.
func (h *PrayerRequestHandler) Create(c *gin.Context) {
	var req prayerSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.Contains(domain.RequestCategories, req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}
	if !domain.Contains(domain.RequestPriorities, req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority"})
		return
	}
	pr := models.PrayerRequest{
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		UserAvatar:  req.UserAvatar,
		Subject:     req.Subject,
		Body:        req.Body,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      domain.StatusPending,
		SubmittedAt: time.Now(),
	}
	if err := h.repo.Create(&pr); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pr)
}

// Respond is the only way a request reaches Responded; it also stamps
// responded_at.
func (h *PrayerRequestHandler) Respond(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pr, err := h.repo.Respond(uint(id), req.Response, req.AdminName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prayer request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pr)
}

// UpdateStatus handles the Pending / In Progress / Closed transitions.
// Responded is reserved for the respond action.
func (h *PrayerRequestHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.Contains(domain.RequestStatuses, req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	if req.Status == domain.StatusResponded {
		c.JSON(http.StatusBadRequest, gin.H{"error": "use the respond action to mark a request responded"})
		return
	}
	pr, err := h.repo.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prayer request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pr)
}

func (h *PrayerRequestHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "prayer request deleted"})
}
