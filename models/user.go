// models/user.go
package models

import "time"

// Admin role value stored on User.Role.
const RoleAdmin = "admin"

// User represents a registered patient account. Identity is the email;
// authentication happens upstream, this service only issues tokens for
// known emails and resolves roles for admin gating.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
