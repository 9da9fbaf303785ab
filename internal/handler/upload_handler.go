package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"arklight/config"
	"arklight/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler is the media upload gateway: multipart file in, durable
// media-host URL out. Nothing is retried; failures carry the provider's
// message in details.
type UploadHandler struct {
	cloud    cloudinary.Client
	cfg      *config.UploadConfig
	progress *ProgressTracker
}

func NewUploadHandler(cloud cloudinary.Client, cfg *config.UploadConfig, progress *ProgressTracker) *UploadHandler {
	return &UploadHandler{cloud: cloud, cfg: cfg, progress: progress}
}

func (h *UploadHandler) maxBytes(kind cloudinary.Kind) int64 {
	switch kind {
	case cloudinary.KindAudio:
		return h.cfg.MaxAudioBytes
	case cloudinary.KindVideo:
		return h.cfg.MaxVideoBytes
	case cloudinary.KindDocument:
		return h.cfg.MaxDocumentBytes
	default:
		return h.cfg.MaxImageBytes
	}
}

// Upload accepts {file, file_type, upload_id?} and forwards the binary
// to the media host within the configured timeout. The optional
// upload_id lets the console poll Progress while the transfer runs.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	fileType := c.PostForm("file_type")
	if fileType == "" {
		fileType = c.PostForm("fileType")
	}
	kind, ok := cloudinary.ParseKind(fileType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_type must be image, audio, video or document"})
		return
	}
	if max := h.maxBytes(kind); file.Size > max {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   fmt.Sprintf("file exceeds the %dMB limit for %s uploads", max>>20, kind),
			"details": fmt.Sprintf("got %d bytes", file.Size),
		})
		return
	}

	uploadID := c.PostForm("upload_id")
	if uploadID == "" {
		uploadID = uuid.New().String()
	}
	h.progress.Start(uploadID)

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Timeout)
	defer cancel()

	reader := newProgressReader(f, file.Size, uploadID, h.progress)
	result, err := h.cloud.Upload(ctx, reader, kind, file.Filename)
	if err != nil {
		log.Printf("[upload] %s upload failed: %v", kind, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "details": err.Error()})
		return
	}
	h.progress.Done(uploadID)
	c.JSON(http.StatusOK, gin.H{
		"secure_url": result.SecureURL,
		"public_id":  result.PublicID,
		"url":        result.SecureURL, // alternative field name
		"upload_id":  uploadID,
	})
}

// Progress reports the current percentage for an in-flight upload.
func (h *UploadHandler) Progress(c *gin.Context) {
	id := c.Param("id")
	pct, ok := h.progress.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown upload id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"upload_id": id, "percent": pct})
}
