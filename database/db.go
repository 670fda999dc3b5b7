package database

import (
	"context"
	"fmt"
	"time"

	"medicare/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the booking backend.
const (
	AppointmentCollection = "appointmentOptions"
	BookingCollection     = "Booking"
	UserCollection        = "Users"
	DoctorCollection      = "Doctors"
	PaymentCollection     = "Payments"
)

// Connect establishes the MongoDB connection and verifies it with a ping.
// The returned client is injected into the repositories; callers own its
// lifecycle and must Disconnect it on shutdown.
func Connect(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Disconnect closes the MongoDB connection.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

// DB returns the application database handle for the given client.
func DB(client *mongo.Client) *mongo.Database {
	return client.Database(config.AppConfig.DatabaseName)
}
