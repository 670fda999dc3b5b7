package handlers

import (
	"errors"
	"net/http"

	"medicare/middleware"
	"medicare/models"
	"medicare/services/booking"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// BookingRequest is the validated POST /booking body.
type BookingRequest struct {
	TreatmentName   string  `json:"treatmentName" binding:"required"`
	AppointmentDate string  `json:"appointmentDate" binding:"required"`
	Slot            string  `json:"slot" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	PatientName     string  `json:"patientName"`
	Phone           string  `json:"phone"`
	Price           float64 `json:"price"`
}

// CreateBooking handles POST /booking. Conflicts and silent persistence
// failures are reported in the envelope with success=false; only malformed
// bodies get a transport-level error.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	candidate := &models.Booking{
		TreatmentName:   req.TreatmentName,
		AppointmentDate: req.AppointmentDate,
		Slot:            req.Slot,
		Email:           req.Email,
		PatientName:     req.PatientName,
		Phone:           req.Phone,
		Price:           req.Price,
	}

	if err := h.Service.Create(candidate); err != nil {
		switch {
		case booking.IsConflict(err):
			utils.SendFailure(c, err.Error())
		case errors.Is(err, booking.ErrNotCompleted):
			utils.SendFailure(c, "Appointment could not be completed")
		default:
			h.Logger.Error("booking failed", zap.String("email", req.Email), zap.Error(err))
			utils.SendFailure(c, err.Error())
		}
		return
	}
	utils.SendMessage(c, "Appointment successfully confirmed")
}

// GetBookingByID handles GET /booking/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")

	bk, err := h.Service.ByID(id)
	if err != nil {
		h.Logger.Error("booking lookup failed", zap.String("id", id), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	if bk == nil {
		utils.SendFailure(c, "No booking found")
		return
	}
	utils.SendData(c, bk)
}

// GetBookingsByEmail handles GET /booking?email=. The requested email must
// match the one decoded from the bearer token.
func (h *BookingHandler) GetBookingsByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" || email != middleware.DecodedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
		return
	}

	bookings, err := h.Service.ByEmail(email)
	if err != nil {
		h.Logger.Error("booking list failed", zap.String("email", email), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	utils.SendData(c, bookings)
}
