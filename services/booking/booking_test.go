package booking

import (
	"errors"
	"testing"

	bookingRepo "medicare/database/repository/booking"
	"medicare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo enforces the uniqueness triple the way the Mongo unique
// index does, so the guard's two paths (pre-check and insert rejection)
// can both be exercised.
type fakeBookingRepo struct {
	stored       []models.Booking
	hideConflict bool // simulate the race: pre-check sees nothing, index still rejects
	silentFail   bool
	createErr    error
}

func (f *fakeBookingRepo) Create(b *models.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	for _, existing := range f.stored {
		if existing.AppointmentDate == b.AppointmentDate &&
			existing.Email == b.Email &&
			existing.TreatmentName == b.TreatmentName {
			return "", bookingRepo.ErrDuplicateBooking
		}
	}
	if f.silentFail {
		return "", nil
	}
	f.stored = append(f.stored, *b)
	return b.ID, nil
}

func (f *fakeBookingRepo) FindConflicts(date, email, treatment string) ([]models.Booking, error) {
	if f.hideConflict {
		return nil, nil
	}
	var out []models.Booking
	for _, b := range f.stored {
		if b.AppointmentDate == date && b.Email == email && b.TreatmentName == treatment {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) { return nil, nil }

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range f.stored {
		if b.ID == id {
			copy := b
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.stored {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func candidate() *models.Booking {
	return &models.Booking{
		TreatmentName:   "Cleaning",
		AppointmentDate: "2024-01-01",
		Slot:            "10am",
		Email:           "jordan@example.com",
		Price:           99,
	}
}

func TestCreateStoresBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	c := candidate()
	require.NoError(t, svc.Create(c))

	require.Len(t, repo.stored, 1)
	stored := repo.stored[0]
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.Paid)
	assert.Empty(t, stored.TransactionID)
	assert.Equal(t, "Cleaning", stored.TreatmentName)
	assert.Equal(t, "10am", stored.Slot)
}

func TestCreateRejectsDuplicateTriple(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	require.NoError(t, svc.Create(candidate()))

	err := svc.Create(candidate())
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), "2024-01-01")
	// The store still holds exactly one matching booking.
	assert.Len(t, repo.stored, 1)
}

func TestCreateDistinctSlotOrEmailSucceeds(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}
	require.NoError(t, svc.Create(candidate()))

	other := candidate()
	other.Email = "casey@example.com"
	other.Slot = "11am"
	require.NoError(t, svc.Create(other))

	assert.Len(t, repo.stored, 2)
}

func TestCreateTranslatesIndexRejection(t *testing.T) {
	// Two requests race past the pre-check; the unique index rejects the
	// second insert and the guard reports the same conflict.
	repo := &fakeBookingRepo{hideConflict: true}
	svc := &DefaultBookingService{Repo: repo}
	require.NoError(t, svc.Create(candidate()))

	err := svc.Create(candidate())
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Len(t, repo.stored, 1)
}

func TestCreateSilentFailure(t *testing.T) {
	repo := &fakeBookingRepo{silentFail: true}
	svc := &DefaultBookingService{Repo: repo}

	err := svc.Create(candidate())
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestCreatePropagatesStoreFault(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("store unreachable")}
	svc := &DefaultBookingService{Repo: repo}

	err := svc.Create(candidate())
	require.Error(t, err)
	assert.False(t, IsConflict(err))
	assert.Contains(t, err.Error(), "store unreachable")
}

func TestByIDMissingReturnsNil(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	got, err := svc.ByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}
