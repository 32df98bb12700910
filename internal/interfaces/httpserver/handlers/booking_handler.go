package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"renova-server/internal/domain/booking"
)

// BookingHandler exposes the renovation booking endpoints.
type BookingHandler struct {
	bookings *booking.Service
	log      zerolog.Logger
}

func NewBookingHandler(bookings *booking.Service, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		log:      log.With().Str("component", "booking-handler").Logger(),
	}
}

type bookingRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Status      int    `json:"status"`
}

type bookingResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Date        string `json:"date"`
	ServiceType string `json:"service_type"`
	Status      int    `json:"status"`
}

func toBookingResponse(b *booking.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Date:        b.Date,
		ServiceType: b.ServiceType,
		Status:      b.Status,
	}
}

// Create records a new booking.
func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.bookings.Create(c.Request.Context(), booking.CreateInput{
		UserID:      req.UserID,
		Date:        req.Date,
		ServiceType: req.ServiceType,
		Status:      req.Status,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("create booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not create booking"})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(created))
}

// List returns every booking.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list bookings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not list bookings"})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

// Search looks a booking up by id, or all bookings for a user by user_id. A
// request with neither parameter gets an explanatory message, not an error.
func (h *BookingHandler) Search(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
			return
		}
		b, err := h.bookings.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, booking.ErrNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			h.log.Error().Err(err).Msg("search booking failed")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not search bookings"})
			return
		}
		c.JSON(http.StatusOK, toBookingResponse(b))
		return
	}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user_id"})
			return
		}
		bookings, err := h.bookings.ListByUserID(c.Request.Context(), uint(userID))
		if err != nil {
			h.log.Error().Err(err).Msg("search bookings by user failed")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not search bookings"})
			return
		}
		out := make([]bookingResponse, 0, len(bookings))
		for _, b := range bookings {
			out = append(out, toBookingResponse(b))
		}
		c.JSON(http.StatusOK, out)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Please provide either id or user_id"})
}

// UpdateStatus changes the status of the booking named by the id query
// parameter.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}
	status, err := strconv.Atoi(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid status"})
		return
	}

	if err := h.bookings.UpdateStatus(c.Request.Context(), uint(id), status); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Booking not found"})
			return
		}
		h.log.Error().Err(err).Msg("update booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking Updated successfully"})
}

// Delete removes the booking named by the id query parameter.
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	if err := h.bookings.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Booking not found"})
			return
		}
		h.log.Error().Err(err).Msg("delete booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
