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

type ResourceHandler struct {
	repo *repository.ContentRepository[models.PrayerResource]
}

func NewResourceHandler(repo *repository.ContentRepository[models.PrayerResource]) *ResourceHandler {
	return &ResourceHandler{repo: repo}
}

type resourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Author      string `json:"author"`
	PDFURL      string `json:"pdf_url"`
	FileName    string `json:"file_name"`
	FileSize    string `json:"file_size"`
	Category    string `json:"category" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

func (r *resourceRequest) validate() string {
	if !cloudinary.IsMediaURL(r.PDFURL) {
		return "please upload the PDF first"
	}
	if !domain.Contains(domain.ResourceCategories, r.Category) {
		return "invalid category"
	}
	return ""
}

func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	res := models.PrayerResource{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		PDFURL:      req.PDFURL,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		Category:    req.Category,
		IsActive:    true,
	}
	if req.IsActive != nil {
		res.IsActive = *req.IsActive
	}
	if err := h.repo.Create(&res); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	res, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	res.Title = req.Title
	res.Description = req.Description
	res.Author = req.Author
	res.PDFURL = req.PDFURL
	res.FileName = req.FileName
	res.FileSize = req.FileSize
	res.Category = req.Category
	if req.IsActive != nil {
		res.IsActive = *req.IsActive
	}
	if err := h.repo.Update(res); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resource deleted"})
}
