package models

import "time"

// Payment records one completed card payment against a booking. Payments
// are immutable once written; resubmissions of the same transaction are
// rejected by a unique index on transactionId.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	Amount        float64   `bson:"amount" json:"amount"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
