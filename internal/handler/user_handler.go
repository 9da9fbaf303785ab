package handler

import (
	"errors"
	"net/http"
	"strconv"

	"arklight/internal/domain"
	"arklight/internal/models"
	"arklight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	repo *repository.ContentRepository[models.AppUser]
}

func NewUserHandler(repo *repository.ContentRepository[models.AppUser]) *UserHandler {
	return &UserHandler{repo: repo}
}

type userRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	ProfileImage string `json:"profile_image"`
	GGPStatus    string `json:"ggp_status" binding:"required"`
}

// List returns all registered users plus per-status counts for the
// overview cards.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	stats := gin.H{"total": len(users)}
	for _, status := range domain.GGPStatuses {
		n := 0
		for _, u := range users {
			if u.GGPStatus == status {
				n++
			}
		}
		stats[status] = n
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "stats": stats})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	user, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.Contains(domain.GGPStatuses, req.GGPStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ggp_status"})
		return
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	user.GGPStatus = req.GGPStatus
	if err := h.repo.Update(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
