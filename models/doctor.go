package models

import "time"

// Doctor is a practitioner profile managed by admins.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Specialty string    `bson:"specialty" json:"specialty"`
	Image     string    `bson:"img,omitempty" json:"img,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
