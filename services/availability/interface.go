package availability

import "medicare/models"

// AvailabilityService derives which appointment slots remain bookable.
type AvailabilityService interface {
	// AvailableAppointments returns every appointment type with its slot
	// list narrowed to the slots not yet booked on the given date.
	AvailableAppointments(date string) ([]models.AppointmentType, error)
	// SpecialtyNames returns the name-only catalog for the treatment
	// selector.
	SpecialtyNames() ([]models.AppointmentSpecialty, error)
}
