package models

// AppointmentType is one category of medical service with its own price and
// daily slot catalog. The name acts as the treatment identifier; bookings
// reference it by value. The catalog is administered out of band and is
// read-only to this service.
type AppointmentType struct {
	ID    string   `bson:"id,omitempty" json:"id,omitempty"`
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}

// AppointmentSpecialty is the name-only projection of an AppointmentType,
// used to populate the treatment selector.
type AppointmentSpecialty struct {
	ID   string `bson:"id,omitempty" json:"id,omitempty"`
	Name string `bson:"name" json:"name"`
}
