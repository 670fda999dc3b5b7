package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	paymentRepo "medicare/database/repository/payment"
	"medicare/models"
	"medicare/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// DefaultPaymentService implements PaymentService. Stripe is configured
// process-wide via stripe.Key at startup.
type DefaultPaymentService struct {
	Repo paymentRepo.PaymentRepository

	// createIntent is swappable for tests; nil means the real Stripe API.
	createIntent func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// CreateIntent creates a card PaymentIntent in USD. Prices are stored in
// major units; Stripe wants minor units. Rounding, not truncation: cent
// values like 4.35 sit just below 435 in binary and would lose a cent.
func (s *DefaultPaymentService) CreateIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(math.Round(price * 100))),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	newIntent := s.createIntent
	if newIntent == nil {
		newIntent = paymentintent.New
	}
	pi, err := newIntent(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// Record persists the payment and marks the referenced booking paid in one
// store transaction.
func (s *DefaultPaymentService) Record(ctx context.Context, p *models.Payment) error {
	logger := utils.GetLogger()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	insertedID, err := s.Repo.Record(ctx, p)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrDuplicateTransaction) {
			return &DuplicatePaymentError{TransactionID: p.TransactionID}
		}
		return err
	}
	if insertedID == "" {
		return ErrNotCompleted
	}

	logger.Info("payment recorded",
		zap.String("id", insertedID),
		zap.String("booking", p.BookingID),
		zap.String("transaction", p.TransactionID),
	)
	return nil
}

// History returns the payments recorded against a booking.
func (s *DefaultPaymentService) History(bookingID string) ([]models.Payment, error) {
	payments, err := s.Repo.GetByBookingID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for booking %s: %w", bookingID, err)
	}
	return payments, nil
}
