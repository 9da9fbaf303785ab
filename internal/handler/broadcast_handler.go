package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"arklight/internal/domain"
	"arklight/internal/models"
	"arklight/internal/repository"
	"arklight/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BroadcastHandler struct {
	repo *repository.ContentRepository[models.BroadcastEvent]
}

func NewBroadcastHandler(repo *repository.ContentRepository[models.BroadcastEvent]) *BroadcastHandler {
	return &BroadcastHandler{repo: repo}
}

type broadcastRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url"`
	EventTime   string `json:"event_time" binding:"required"` // datetime-local, e.g. 2024-06-02T10:00
	IsActive    *bool  `json:"is_active"`
}

func parseEventTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event_time %q", s)
}

// activeCapReached counts active events other than exceptID.
func (h *BroadcastHandler) activeCapReached(exceptID uint) (bool, error) {
	n, err := h.repo.CountWhere("is_active = ? AND id <> ?", true, exceptID)
	if err != nil {
		return false, err
	}
	return n >= domain.MaxActiveBroadcasts, nil
}

func (h *BroadcastHandler) List(c *gin.Context) {
	events, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *BroadcastHandler) Create(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !cloudinary.IsMediaURL(req.ImageURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload an image first"})
		return
	}
	eventTime, err := parseEventTime(req.EventTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	if active {
		reached, err := h.activeCapReached(0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if reached {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d broadcast events can be live at once", domain.MaxActiveBroadcasts)})
			return
		}
	}
	event := models.BroadcastEvent{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		EventTime:   eventTime,
		IsActive:    active,
	}
	if err := h.repo.Create(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *BroadcastHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	event, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "broadcast event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !cloudinary.IsMediaURL(req.ImageURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload an image first"})
		return
	}
	eventTime, err := parseEventTime(req.EventTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IsActive != nil && *req.IsActive && !event.IsActive {
		reached, err := h.activeCapReached(event.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if reached {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d broadcast events can be live at once", domain.MaxActiveBroadcasts)})
			return
		}
	}
	event.Title = req.Title
	event.Description = req.Description
	event.ImageURL = req.ImageURL
	event.EventTime = eventTime
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	if err := h.repo.Update(event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *BroadcastHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "broadcast event deleted"})
}
