package booking

import "medicare/models"

// BookingService is the booking guard: it enforces the one booking per
// patient per treatment per day invariant before persisting.
type BookingService interface {
	// Create persists the candidate booking. It returns a *ConflictError
	// when the uniqueness triple is already claimed and ErrNotCompleted
	// when the store confirmed no identifier without raising a fault.
	Create(candidate *models.Booking) error
	// ByID returns a single booking, or nil when none exists.
	ByID(id string) (*models.Booking, error)
	// ByEmail returns every booking owned by the given patient email.
	ByEmail(email string) ([]models.Booking, error)
}
