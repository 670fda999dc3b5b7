package handlers

import (
	"medicare/services/availability"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the availability endpoints.
type AppointmentHandler struct {
	Availability availability.AvailabilityService
	Logger       *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc availability.AvailabilityService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Availability: svc, Logger: logger}
}

// GetAppointments handles GET /appointments?date=. It returns every
// appointment type with only its remaining slots for the date. No date
// validation: an unparseable date matches zero bookings.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	date := c.Query("date")

	appointments, err := h.Availability.AvailableAppointments(date)
	if err != nil {
		h.Logger.Error("availability lookup failed", zap.String("date", date), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	utils.SendData(c, appointments)
}

// GetSpecialties handles GET /appointmentSpecialty.
func (h *AppointmentHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Availability.SpecialtyNames()
	if err != nil {
		h.Logger.Error("specialty lookup failed", zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	utils.SendData(c, specialties)
}
