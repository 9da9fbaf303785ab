package handler

import (
	"errors"
	"net/http"
	"strconv"

	"arklight/internal/domain"
	"arklight/internal/models"
	"arklight/internal/repository"
	"arklight/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SliderHandler struct {
	repo *repository.ContentRepository[models.SliderSlide]
}

func NewSliderHandler(repo *repository.ContentRepository[models.SliderSlide]) *SliderHandler {
	return &SliderHandler{repo: repo}
}

type sliderRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageURL  string `json:"image_url"`
	ButtonURL string `json:"button_url"`
	SortOrder int    `json:"sort_order" binding:"required"`
	IsActive  *bool  `json:"is_active"`
}

func (r *sliderRequest) validate() string {
	if !cloudinary.IsMediaURL(r.ImageURL) {
		return "please upload an image first"
	}
	if r.SortOrder < 1 || r.SortOrder > domain.SliderSlots {
		return "sort_order must be between 1 and 4"
	}
	return ""
}

func (h *SliderHandler) List(c *gin.Context) {
	slides, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

func (h *SliderHandler) Create(c *gin.Context) {
	var req sliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	slide := models.SliderSlide{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		ButtonURL: req.ButtonURL,
		SortOrder: req.SortOrder,
		IsActive:  true,
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

func (h *SliderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	slide, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "slide not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req sliderRequest
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
	slide.ButtonURL = req.ButtonURL
	slide.SortOrder = req.SortOrder
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}
	if err := h.repo.Update(slide); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *SliderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slide deleted"})
}
