package user

import "medicare/models"

// UserService manages patient accounts, token issuance and admin roles.
type UserService interface {
	// Register stores a new user, or reports created=false when the email
	// is already registered (the caller treats that as a login).
	Register(u *models.User) (created bool, err error)
	// GetAll returns every registered user.
	GetAll() ([]models.User, error)
	// IssueToken returns a signed bearer token for a known email, or
	// ErrUnknownUser when no account exists.
	IssueToken(email string) (string, error)
	// IsAdmin reports whether the account with the given email carries
	// the admin role.
	IsAdmin(email string) (bool, error)
	// PromoteToAdmin grants the admin role to the user with the given ID
	// and reports whether an existing user was matched.
	PromoteToAdmin(id string) (bool, error)
}
