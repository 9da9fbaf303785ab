package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"arklight/internal/domain"
	"arklight/internal/models"
	"arklight/internal/repository"
	"arklight/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VideoHandler struct {
	repo *repository.ContentRepository[models.VideoResource]
}

func NewVideoHandler(repo *repository.ContentRepository[models.VideoResource]) *VideoHandler {
	return &VideoHandler{repo: repo}
}

type videoRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
	Duration     string `json:"duration"`
	IsActive     *bool  `json:"is_active"`
}

func (r *videoRequest) validate() string {
	if !cloudinary.IsMediaURL(r.ThumbnailURL) {
		return "please upload a thumbnail first"
	}
	if !cloudinary.IsMediaURL(r.VideoURL) {
		return "please upload the video first"
	}
	return ""
}

func (h *VideoHandler) activeCapReached(exceptID uint) (bool, error) {
	n, err := h.repo.CountWhere("is_active = ? AND id <> ?", true, exceptID)
	if err != nil {
		return false, err
	}
	return n >= domain.MaxActiveVideos, nil
}

func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

func (h *VideoHandler) Create(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
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
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d videos can be live at once", domain.MaxActiveVideos)})
			return
		}
	}
	video := models.VideoResource{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		Duration:     req.Duration,
		IsActive:     active,
	}
	if err := h.repo.Create(&video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (h *VideoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	video, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if req.IsActive != nil && *req.IsActive && !video.IsActive {
		reached, err := h.activeCapReached(video.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if reached {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d videos can be live at once", domain.MaxActiveVideos)})
			return
		}
	}
	video.Title = req.Title
	video.Description = req.Description
	video.ThumbnailURL = req.ThumbnailURL
	video.VideoURL = req.VideoURL
	video.Duration = req.Duration
	if req.IsActive != nil {
		video.IsActive = *req.IsActive
	}
	if err := h.repo.Update(video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}
