package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"renova-server/internal/domain/generation"
	"renova-server/internal/infrastructure/aiclient"
)

// GenerationHandler exposes the AI image endpoints.
type GenerationHandler struct {
	service        *generation.Service
	maxUploadBytes int64
	log            zerolog.Logger
}

func NewGenerationHandler(service *generation.Service, maxUploadBytes int64, log zerolog.Logger) *GenerationHandler {
	return &GenerationHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		log:            log.With().Str("component", "generation-handler").Logger(),
	}
}

// FromPrompt generates an image from the prompt form field.
func (h *GenerationHandler) FromPrompt(c *gin.Context) {
	prompt := c.PostForm("prompt")
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "prompt is required"})
		return
	}

	result, err := h.service.GenerateFromPrompt(c.Request.Context(), requestBaseURL(c), prompt)
	if err != nil {
		h.writeError(c, err, "Error generating image")
		return
	}
	c.JSON(http.StatusOK, result)
}

// FromUpload generates an image from a prompt plus an uploaded image.
func (h *GenerationHandler) FromUpload(c *gin.Context) {
	prompt := c.PostForm("prompt")
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "prompt is required"})
		return
	}
	upload, ok := h.readUpload(c, "image", true)
	if !ok {
		return
	}

	result, err := h.service.GenerateFromUpload(c.Request.Context(), requestBaseURL(c), prompt, *upload)
	if err != nil {
		h.writeError(c, err, "Error generating image")
		return
	}
	c.JSON(http.StatusOK, result)
}

// InteriorWithCost generates an interior image and a country-specific cost
// estimate. The image file is optional.
func (h *GenerationHandler) InteriorWithCost(c *gin.Context) {
	prompt := c.PostForm("prompt")
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "prompt is required"})
		return
	}
	country := c.PostForm("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "country is required"})
		return
	}
	upload, ok := h.readUpload(c, "image", false)
	if !ok {
		return
	}

	result, err := h.service.GenerateInteriorWithCost(c.Request.Context(), requestBaseURL(c), prompt, country, upload)
	if err != nil {
		h.writeError(c, err, "Error generating interior with cost")
		return
	}
	c.JSON(http.StatusOK, result)
}

// DetectRooms names the rooms in an uploaded 3D floor plan.
func (h *GenerationHandler) DetectRooms(c *gin.Context) {
	upload, ok := h.readUpload(c, "image", true)
	if !ok {
		return
	}

	rooms, err := h.service.DetectRooms(c.Request.Context(), *upload)
	if err != nil {
		h.writeError(c, err, "Error detecting rooms")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// readUpload reads the named multipart file. Required-but-missing and
// oversized files are rejected with a 400 written here; an optional missing
// file comes back as (nil, true).
func (h *GenerationHandler) readUpload(c *gin.Context, field string, required bool) (*generation.Upload, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		if !required && errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("%s file is required", field)})
		return nil, false
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "image exceeds the upload size limit"})
		return nil, false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read image"})
		return nil, false
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read image"})
		return nil, false
	}

	return &generation.Upload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, true
}

// writeError maps domain errors onto the response: client input problems
// are 400s, a missing provider key and provider call failures are 500s.
func (h *GenerationHandler) writeError(c *gin.Context, err error, context string) {
	var inputErr *generation.InputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": inputErr.Detail})
		return
	}
	if errors.Is(err, aiclient.ErrUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Failed to initialize Google Generative AI client: %v", err)})
		return
	}

	h.log.Error().Err(err).Msg(context)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("%s: %v", context, err)})
}
