package v1

import (
	"github.com/gin-gonic/gin"

	"renova-server/internal/infrastructure/auth"
	"renova-server/internal/interfaces/httpserver/handlers"
	"renova-server/internal/interfaces/httpserver/middlewares"
)

// Routes encapsulates route registration.
type Routes struct {
	handlers *handlers.Provider
	tokens   *auth.TokenManager
}

func NewRoutes(provider *handlers.Provider, tokens *auth.TokenManager) *Routes {
	return &Routes{handlers: provider, tokens: tokens}
}

// Register attaches the application routes. Account, gallery, booking and
// shop endpoints live at the root; the AI endpoints sit under /api/v1.
func (r *Routes) Register(router gin.IRouter) {
	authed := middlewares.RequireAuth(r.tokens)

	router.POST("/register", r.handlers.Auth.Register)
	router.POST("/login", r.handlers.Auth.Login)
	router.GET("/me", authed, r.handlers.Auth.Me)
	router.GET("/users", authed, r.handlers.Auth.ListUsers)

	router.POST("/photos", authed, r.handlers.Photo.Upload)
	router.GET("/photos", authed, r.handlers.Photo.List)
	router.GET("/photos/:id", r.handlers.Photo.Get)
	router.PUT("/photos/:id", authed, r.handlers.Photo.Update)
	router.DELETE("/photos/:id", authed, r.handlers.Photo.Delete)

	router.POST("/bookings", r.handlers.Booking.Create)
	router.GET("/bookings", r.handlers.Booking.List)
	router.GET("/search_booking", r.handlers.Booking.Search)
	router.PUT("/bookings", r.handlers.Booking.UpdateStatus)
	router.DELETE("/bookings", r.handlers.Booking.Delete)

	router.GET("/shops/nearby", r.handlers.Shop.Nearby)
	router.GET("/shops/categories", r.handlers.Shop.Categories)

	ai := router.Group("/api/v1")
	ai.POST("/generate-image-prompt", r.handlers.Generation.FromPrompt)
	ai.POST("/generate-image-upload", r.handlers.Generation.FromUpload)
	ai.POST("/generate-interior-with-cost", r.handlers.Generation.InteriorWithCost)
	ai.POST("/detect-rooms-from-3d", r.handlers.Generation.DetectRooms)
}
