package availability

import (
	"fmt"

	appointmentRepo "medicare/database/repository/appointment"
	bookingRepo "medicare/database/repository/booking"
	"medicare/models"
)

// DefaultAvailabilityService implements AvailabilityService on top of the
// appointment catalog and the booking collection. It is read-only.
type DefaultAvailabilityService struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	BookingRepo     bookingRepo.BookingRepository
}

// AvailableAppointments subtracts the slots already booked on the given
// date from each appointment type's full slot catalog. Catalog order is
// preserved; fully-booked types come back with an empty slot list so the
// caller can render them explicitly. Malformed dates match zero bookings
// and therefore return the full catalog.
func (s *DefaultAvailabilityService) AvailableAppointments(date string) ([]models.AppointmentType, error) {
	alreadyBooked, err := s.BookingRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", date, err)
	}

	appointments, err := s.AppointmentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment options: %w", err)
	}

	// Group the day's booked slots by treatment name.
	bookedSlots := make(map[string]map[string]bool, len(appointments))
	for _, booked := range alreadyBooked {
		slots, ok := bookedSlots[booked.TreatmentName]
		if !ok {
			slots = make(map[string]bool)
			bookedSlots[booked.TreatmentName] = slots
		}
		slots[booked.Slot] = true
	}

	for i, appointment := range appointments {
		taken := bookedSlots[appointment.Name]
		remaining := make([]string, 0, len(appointment.Slots))
		for _, slot := range appointment.Slots {
			if !taken[slot] {
				remaining = append(remaining, slot)
			}
		}
		appointments[i].Slots = remaining
	}
	return appointments, nil
}

// SpecialtyNames returns only the name of every appointment type.
func (s *DefaultAvailabilityService) SpecialtyNames() ([]models.AppointmentSpecialty, error) {
	specialties, err := s.AppointmentRepo.GetNames()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment specialties: %w", err)
	}
	return specialties, nil
}
