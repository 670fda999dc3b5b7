package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"medicare/database"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateBooking is returned when the unique conflict index rejects an
// insert for an already-claimed (appointmentDate, email, treatmentName)
// triple. This closes the race between the conflict pre-check and the
// insert: two concurrent requests cannot both get past the index.
var ErrDuplicateBooking = fmt.Errorf("booking already exists for this date, email and treatment")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by the Booking
// collection.
func NewMongoBookingRepo(client *mongo.Client) BookingRepository {
	coll := database.DB(client).Collection(database.BookingCollection)
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new booking document. A duplicate-key rejection from the
// conflict index is surfaced as ErrDuplicateBooking.
func (r *MongoBookingRepo) Create(booking *models.Booking) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateBooking
		}
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	if res.InsertedID == nil {
		return "", nil
	}
	return booking.ID, nil
}

// FindConflicts returns all bookings matching the uniqueness triple.
func (r *MongoBookingRepo) FindConflicts(appointmentDate, email, treatmentName string) ([]models.Booking, error) {
	filter := bson.M{
		"appointmentDate": appointmentDate,
		"email":           email,
		"treatmentName":   treatmentName,
	}
	return r.find(filter)
}

// GetByDate returns every booking on the given date. Malformed dates simply
// match zero documents.
func (r *MongoBookingRepo) GetByDate(appointmentDate string) ([]models.Booking, error) {
	return r.find(bson.M{"appointmentDate": appointmentDate})
}

// GetByEmail returns every booking owned by the given patient email.
func (r *MongoBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	return r.find(bson.M{"email": email})
}

// GetByID retrieves a booking by its unique ID, or nil when none exists.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading bookings: %w", err)
	}
	return bookings, nil
}
