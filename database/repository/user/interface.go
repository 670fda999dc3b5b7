package userRepo

import "medicare/models"

// UserRepository persists patient accounts.
type UserRepository interface {
	// Create inserts a user and returns the generated identifier the
	// store confirmed.
	Create(user *models.User) (string, error)
	// GetByEmail returns the user with the given email, or nil when none
	// exists.
	GetByEmail(email string) (*models.User, error)
	// GetAll returns every registered user.
	GetAll() ([]models.User, error)
	// PromoteToAdmin sets the admin role on the user with the given ID.
	// It reports whether an existing user document was matched, and the
	// matched user's email so callers can invalidate cached role lookups.
	PromoteToAdmin(id string) (email string, matched bool, err error)
}
