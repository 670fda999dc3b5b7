package booking

import (
	"errors"
	"fmt"

	bookingRepo "medicare/database/repository/booking"
	"medicare/models"
	"medicare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// Create runs the conflict check and persists the candidate. The pre-check
// gives the caller a precise rejection message; the unique index behind
// Repo.Create is the actual gate, so two concurrent requests racing past
// the pre-check still produce exactly one booking.
func (s *DefaultBookingService) Create(candidate *models.Booking) error {
	logger := utils.GetLogger()

	conflicts, err := s.Repo.FindConflicts(candidate.AppointmentDate, candidate.Email, candidate.TreatmentName)
	if err != nil {
		return fmt.Errorf("conflict check failed: %w", err)
	}
	if len(conflicts) > 0 {
		return &ConflictError{Date: candidate.AppointmentDate}
	}

	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}
	candidate.Paid = false
	candidate.TransactionID = ""

	insertedID, err := s.Repo.Create(candidate)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			// Lost the race window between check and insert.
			return &ConflictError{Date: candidate.AppointmentDate}
		}
		return err
	}
	if insertedID == "" {
		return ErrNotCompleted
	}

	logger.Info("booking confirmed",
		zap.String("id", insertedID),
		zap.String("treatment", candidate.TreatmentName),
		zap.String("date", candidate.AppointmentDate),
	)
	return nil
}

// ByID returns a single booking, or nil when none exists.
func (s *DefaultBookingService) ByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ByEmail returns every booking owned by the given patient email.
func (s *DefaultBookingService) ByEmail(email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(email)
}
