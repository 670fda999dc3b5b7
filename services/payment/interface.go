package payment

import (
	"context"

	"medicare/models"
)

// PaymentService creates Stripe payment intents and records completed
// payments against bookings.
type PaymentService interface {
	// CreateIntent creates a card PaymentIntent for the given price and
	// returns the client-side confirmation secret.
	CreateIntent(price float64) (string, error)
	// Record persists the payment and marks the referenced booking paid.
	// Resubmissions with an already-recorded transactionId are rejected
	// with a *DuplicatePaymentError.
	Record(ctx context.Context, payment *models.Payment) error
	// History returns the payments recorded against a booking.
	History(bookingID string) ([]models.Payment, error)
}
