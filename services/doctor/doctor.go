package doctor

import (
	"errors"

	doctorRepo "medicare/database/repository/doctor"
	"medicare/models"

	"github.com/google/uuid"
)

// ErrNotCompleted reports a doctor insert that the store neither confirmed
// nor faulted on.
var ErrNotCompleted = errors.New("doctor could not be created")

// DoctorService manages practitioner profiles. All operations are
// admin-gated at the handler layer.
type DoctorService interface {
	Create(d *models.Doctor) error
	GetAll() ([]models.Doctor, error)
	// Delete reports whether a doctor document was actually removed.
	Delete(id string) (bool, error)
}

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

// Create stores a new doctor profile.
func (s *DefaultDoctorService) Create(d *models.Doctor) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	insertedID, err := s.Repo.Create(d)
	if err != nil {
		return err
	}
	if insertedID == "" {
		return ErrNotCompleted
	}
	return nil
}

// GetAll returns every doctor profile.
func (s *DefaultDoctorService) GetAll() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

// Delete removes a doctor by ID.
func (s *DefaultDoctorService) Delete(id string) (bool, error) {
	return s.Repo.Delete(id)
}
