package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"renova-server/internal/domain/photo"
	"renova-server/internal/domain/user"
)

// PhotoHandler exposes the gallery CRUD endpoints.
type PhotoHandler struct {
	photos         *photo.Service
	users          *user.Service
	maxUploadBytes int64
	log            zerolog.Logger
}

func NewPhotoHandler(photos *photo.Service, users *user.Service, maxUploadBytes int64, log zerolog.Logger) *PhotoHandler {
	return &PhotoHandler{
		photos:         photos,
		users:          users,
		maxUploadBytes: maxUploadBytes,
		log:            log.With().Str("component", "photo-handler").Logger(),
	}
}

type photoResponse struct {
	ID          uint   `json:"id"`
	Photo       string `json:"photo"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func toPhotoResponse(p *photo.Photo) photoResponse {
	return photoResponse{
		ID:          p.ID,
		Photo:       p.URL,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
	}
}

// Upload stores a new gallery photo. Admin only.
func (h *PhotoHandler) Upload(c *gin.Context) {
	if _, ok := requireAdmin(c, h.users); !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "photo file is required"})
		return
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "photo exceeds the upload size limit"})
		return
	}
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "title is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read photo"})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read photo"})
		return
	}

	created, err := h.photos.Upload(c.Request.Context(), photo.UploadInput{
		BaseURL:     requestBaseURL(c),
		Title:       title,
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Data:        data,
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("photo upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not store photo"})
		return
	}

	c.JSON(http.StatusCreated, toPhotoResponse(created))
}

// List returns every gallery photo.
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.photos.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list photos failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not list photos"})
		return
	}

	out := make([]photoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one photo by id.
func (h *PhotoHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.photos.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, photo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Photo not found"})
			return
		}
		h.log.Error().Err(err).Uint("id", id).Msg("get photo failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not load photo"})
		return
	}
	c.JSON(http.StatusOK, toPhotoResponse(p))
}

type photoUpdateRequest struct {
	Photo       string `json:"photo"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Update replaces a photo's metadata.
func (h *PhotoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req photoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	updated, err := h.photos.Update(c.Request.Context(), id, photo.UpdateInput{
		URL:         req.Photo,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, photo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Photo not found"})
			return
		}
		h.log.Error().Err(err).Uint("id", id).Msg("update photo failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not update photo"})
		return
	}
	c.JSON(http.StatusOK, toPhotoResponse(updated))
}

// Delete removes a photo. Admin only.
func (h *PhotoHandler) Delete(c *gin.Context) {
	if _, ok := requireAdmin(c, h.users); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.photos.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, photo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Photo not found"})
			return
		}
		h.log.Error().Err(err).Uint("id", id).Msg("delete photo failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not delete photo"})
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the :id path parameter, writing the 400 itself on failure.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
