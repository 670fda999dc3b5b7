package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medicare/database"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new AppointmentRepository backed by the
// appointmentOptions collection.
func NewMongoAppointmentRepo(client *mongo.Client) AppointmentRepository {
	coll := database.DB(client).Collection(database.AppointmentCollection)
	return &MongoAppointmentRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll returns the full, unfiltered catalog in insertion order.
func (r *MongoAppointmentRepo) GetAll() ([]models.AppointmentType, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.AppointmentType
	for cursor.Next(ctx) {
		var a models.AppointmentType
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment option: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading appointment options: %w", err)
	}
	return appointments, nil
}

// GetNames returns only the name field of every appointment type.
func (r *MongoAppointmentRepo) GetNames() ([]models.AppointmentSpecialty, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var specialties []models.AppointmentSpecialty
	for cursor.Next(ctx) {
		var s models.AppointmentSpecialty
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode appointment specialty: %w", err)
		}
		specialties = append(specialties, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading appointment specialties: %w", err)
	}
	return specialties, nil
}
