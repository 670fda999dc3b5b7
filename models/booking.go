package models

import "time"

// Booking represents a patient's claim on one slot of one treatment on one
// date. At most one booking may exist per (appointmentDate, email,
// treatmentName) triple; the booking repository enforces this with a unique
// compound index.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	TreatmentName   string    `bson:"treatmentName" json:"treatmentName"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"` // "YYYY-MM-DD"
	Slot            string    `bson:"slot" json:"slot"`
	Email           string    `bson:"email" json:"email"`
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64   `bson:"price" json:"price"`
	Paid            bool      `bson:"paid" json:"paid"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
