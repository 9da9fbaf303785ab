package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"arklight/internal/domain"
	"arklight/internal/models"
	"arklight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuizHandler struct {
	repo *repository.ContentRepository[models.QuizQuestion]
}

func NewQuizHandler(repo *repository.ContentRepository[models.QuizQuestion]) *QuizHandler {
	return &QuizHandler{repo: repo}
}

type quizRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectOption int      `json:"correct_option"`
}

// cleanOptions drops blank entries, preserving order. The correct index
// refers to the cleaned list.
func cleanOptions(raw []string) []string {
	options := make([]string, 0, len(raw))
	for _, o := range raw {
		if s := strings.TrimSpace(o); s != "" {
			options = append(options, s)
		}
	}
	return options
}

func (r *quizRequest) validate() ([]string, string) {
	options := cleanOptions(r.Options)
	if len(options) < domain.MinQuizOptions {
		return nil, fmt.Sprintf("please enter at least %d options", domain.MinQuizOptions)
	}
	if len(options) > domain.MaxQuizOptions {
		return nil, fmt.Sprintf("at most %d options are allowed", domain.MaxQuizOptions)
	}
	if r.CorrectOption < 0 || r.CorrectOption >= len(options) {
		return nil, "please select a valid correct option"
	}
	return options, ""
}

func (h *QuizHandler) List(c *gin.Context) {
	questions, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (h *QuizHandler) Create(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	options, msg := req.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	q := models.QuizQuestion{
		Question:      req.Question,
		Options:       options,
		CorrectOption: req.CorrectOption,
	}
	if err := h.repo.Create(&q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, q)
}

func (h *QuizHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	q, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	options, msg := req.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	q.Question = req.Question
	q.Options = options
	q.CorrectOption = req.CorrectOption
	if err := h.repo.Update(q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuizHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "question deleted"})
}
