package doctorRepo

import "medicare/models"

// DoctorRepository persists practitioner profiles. All access is
// admin-gated at the handler layer.
type DoctorRepository interface {
	// Create inserts a doctor and returns the generated identifier the
	// store confirmed.
	Create(doctor *models.Doctor) (string, error)
	// GetAll returns every doctor profile.
	GetAll() ([]models.Doctor, error)
	// Delete removes a doctor by ID and reports whether a document was
	// actually deleted.
	Delete(id string) (bool, error)
}
