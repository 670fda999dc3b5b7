package bookingRepo

import "medicare/models"

// BookingRepository persists patient bookings.
type BookingRepository interface {
	// Create inserts a booking and returns the generated identifier the
	// store confirmed. An empty identifier without an error is a silent
	// persistence failure the caller must report as "not completed".
	Create(booking *models.Booking) (string, error)
	// FindConflicts returns the bookings matching the
	// (appointmentDate, email, treatmentName) triple.
	FindConflicts(appointmentDate, email, treatmentName string) ([]models.Booking, error)
	// GetByDate returns every booking on the given calendar date.
	GetByDate(appointmentDate string) ([]models.Booking, error)
	// GetByID returns a single booking, or nil when none exists.
	GetByID(id string) (*models.Booking, error)
	// GetByEmail returns every booking owned by the given patient email.
	GetByEmail(email string) ([]models.Booking, error)
}
