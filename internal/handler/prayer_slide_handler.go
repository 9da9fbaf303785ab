package handler

import (
	"errors"
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

type PrayerSlideHandler struct {
	repo *repository.ContentRepository[models.PrayerSlide]
}

func NewPrayerSlideHandler(repo *repository.ContentRepository[models.PrayerSlide]) *PrayerSlideHandler {
	return &PrayerSlideHandler{repo: repo}
}

type prayerSlideRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageURL  string `json:"image_url"`
	EventTime string `json:"event_time" binding:"required"` // HH:MM
	Frequency string `json:"frequency" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (r *prayerSlideRequest) validate() string {
	if !cloudinary.IsMediaURL(r.ImageURL) {
		return "please upload an image first"
	}
	if _, err := time.Parse("15:04", r.EventTime); err != nil {
		return "event_time must be HH:MM"
	}
	if !domain.Contains(domain.Frequencies, r.Frequency) {
		return "invalid frequency"
	}
	return ""
}

func (h *PrayerSlideHandler) List(c *gin.Context) {
	slides, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

func (h *PrayerSlideHandler) Create(c *gin.Context) {
	var req prayerSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	slide := models.PrayerSlide{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		EventTime: req.EventTime,
		Frequency: req.Frequency,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if slide.SortOrder == 0 {
		slide.SortOrder = 1
	}
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}
	if err := h.repo.Create(&slide); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, slide)
}

func (h *PrayerSlideHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	slide, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prayer slide not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req prayerSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	slide.Title = req.Title
	slide.ImageURL = req.ImageURL
	slide.EventTime = req.EventTime
	slide.Frequency = req.Frequency
	if req.SortOrder != 0 {
		slide.SortOrder = req.SortOrder
	}
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}
	if err := h.repo.Update(slide); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *PrayerSlideHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "prayer slide deleted"})
}
