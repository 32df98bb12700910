package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"renova-server/internal/config"
	"renova-server/internal/domain/booking"
	"renova-server/internal/domain/generation"
	"renova-server/internal/domain/photo"
	"renova-server/internal/domain/shop"
	"renova-server/internal/domain/user"
	"renova-server/internal/infrastructure/auth"
)

// Provider wires HTTP handlers.
type Provider struct {
	Auth       *AuthHandler
	Photo      *PhotoHandler
	Booking    *BookingHandler
	Shop       *ShopHandler
	Generation *GenerationHandler
}

func NewProvider(
	cfg *config.Config,
	users *user.Service,
	tokens *auth.TokenManager,
	photos *photo.Service,
	bookings *booking.Service,
	shops *shop.Service,
	generator *generation.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Auth:       NewAuthHandler(users, tokens, log),
		Photo:      NewPhotoHandler(photos, users, cfg.MaxUploadBytes, log),
		Booking:    NewBookingHandler(bookings, log),
		Shop:       NewShopHandler(shops, log),
		Generation: NewGenerationHandler(generator, cfg.MaxUploadBytes, log),
	}
}

// requestBaseURL reconstructs the externally visible base URL of the
// current request, honoring the forwarded proto set by a proxy.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
