package paymentRepo

import (
	"context"

	"medicare/models"
)

// PaymentRepository persists payment records and marks the referenced
// booking paid in the same transaction.
type PaymentRepository interface {
	// Record inserts the payment and updates the referenced booking
	// (paid=true, transactionId) atomically. It returns the generated
	// payment identifier the store confirmed.
	Record(ctx context.Context, payment *models.Payment) (string, error)
	// GetByBookingID returns the payments recorded against a booking.
	GetByBookingID(bookingID string) ([]models.Payment, error)
}
