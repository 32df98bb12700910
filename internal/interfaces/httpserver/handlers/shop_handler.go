package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"renova-server/internal/domain/shop"
)

const defaultSearchRadius = 5000

// ShopHandler exposes the nearby-shop lookup endpoints.
type ShopHandler struct {
	shops *shop.Service
	log   zerolog.Logger
}

func NewShopHandler(shops *shop.Service, log zerolog.Logger) *ShopHandler {
	return &ShopHandler{
		shops: shops,
		log:   log.With().Str("component", "shop-handler").Logger(),
	}
}

// Nearby returns renovation shops around the given coordinates.
func (h *ShopHandler) Nearby(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "latitude is required"})
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "longitude is required"})
		return
	}

	radius := defaultSearchRadius
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid radius"})
			return
		}
		radius = parsed
	}

	result := h.shops.Nearby(c.Request.Context(), latitude, longitude, radius, c.Query("category"))
	c.JSON(http.StatusOK, result)
}

// Categories returns the renovation categories and their place-type
// mapping.
func (h *ShopHandler) Categories(c *gin.Context) {
	categories, mapping := h.shops.Categories()
	c.JSON(http.StatusOK, gin.H{
		"categories":       categories,
		"category_mapping": mapping,
	})
}
