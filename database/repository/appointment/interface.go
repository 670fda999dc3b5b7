package appointmentRepo

import "medicare/models"

// AppointmentRepository provides read access to the appointment catalog.
// The catalog is seeded out of band; this service never writes it.
type AppointmentRepository interface {
	// GetAll returns every appointment type with its full slot catalog,
	// in catalog order.
	GetAll() ([]models.AppointmentType, error)
	// GetNames returns the name-only projection of every appointment type.
	GetNames() ([]models.AppointmentSpecialty, error)
}
