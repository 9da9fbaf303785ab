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

type MusicHandler struct {
	repo *repository.ContentRepository[models.MusicTrack]
}

func NewMusicHandler(repo *repository.ContentRepository[models.MusicTrack]) *MusicHandler {
	return &MusicHandler{repo: repo}
}

type musicRequest struct {
	Title    string `json:"title" binding:"required"`
	Artist   string `json:"artist" binding:"required"`
	Genre    string `json:"genre"`
	ImageURL string `json:"image_url"`
	AudioURL string `json:"audio_url"`
}

// validate enforces that both assets already live on the media host;
// a non-empty URL elsewhere is rejected too.
func (r *musicRequest) validate() string {
	if !cloudinary.IsMediaURL(r.ImageURL) {
		return "cover image must be uploaded to the media host first"
	}
	if !cloudinary.IsMediaURL(r.AudioURL) {
		return "audio file must be uploaded to the media host first"
	}
	return ""
}

func (h *MusicHandler) List(c *gin.Context) {
	tracks, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func (h *MusicHandler) Create(c *gin.Context) {
	var req musicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	track := models.MusicTrack{
		Title:    req.Title,
		Artist:   req.Artist,
		Genre:    req.Genre,
		ImageURL: req.ImageURL,
		AudioURL: req.AudioURL,
	}
	if err := h.repo.Create(&track); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, track)
}

func (h *MusicHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	track, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req musicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	track.Title = req.Title
	track.Artist = req.Artist
	track.Genre = req.Genre
	track.ImageURL = req.ImageURL
	track.AudioURL = req.AudioURL
	if err := h.repo.Update(track); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, track)
}

func (h *MusicHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "track deleted"})
}
