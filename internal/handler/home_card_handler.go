package handler

import (
	"errors"
	"net/http"
	"strconv"

	"arklight/internal/models"
	"arklight/internal/repository"
	"arklight/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HomeCardHandler struct {
	repo *repository.ContentRepository[models.HomeCard]
}

func NewHomeCardHandler(repo *repository.ContentRepository[models.HomeCard]) *HomeCardHandler {
	return &HomeCardHandler{repo: repo}
}

type homeCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ButtonURL   string `json:"button_url"`
	IsActive    *bool  `json:"is_active"`
}

func (h *HomeCardHandler) List(c *gin.Context) {
	cards, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

func (h *HomeCardHandler) Create(c *gin.Context) {
	var req homeCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !cloudinary.IsMediaURL(req.ImageURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload an image first"})
		return
	}
	card := models.HomeCard{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ButtonURL:   req.ButtonURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		card.IsActive = *req.IsActive
	}
	if err := h.repo.Create(&card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *HomeCardHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	card, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "home card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req homeCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !cloudinary.IsMediaURL(req.ImageURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload an image first"})
		return
	}
	card.Title = req.Title
	card.Description = req.Description
	card.ImageURL = req.ImageURL
	card.ButtonURL = req.ButtonURL
	if req.IsActive != nil {
		card.IsActive = *req.IsActive
	}
	if err := h.repo.Update(card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *HomeCardHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "home card deleted"})
}
