package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DiagHandler is the fire-and-forget diagnostic sink the console posts
// save-flow debug messages to.
type DiagHandler struct{}

func NewDiagHandler() *DiagHandler {
	return &DiagHandler{}
}

type diagRequest struct {
	Message string                 `json:"message" binding:"required"`
	Data    map[string]interface{} `json:"data"`
}

func (h *DiagHandler) Log(c *gin.Context) {
	var req diagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}
	if req.Data != nil {
		log.Printf("[console] %s data=%v", req.Message, req.Data)
	} else {
		log.Printf("[console] %s", req.Message)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
