package handlers

import (
	"medicare/services/user"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandlerBundle groups the assembled handlers plus the dependencies the
// route middleware needs (role lookups and their cache).
type HandlerBundle struct {
	Appointment *AppointmentHandler
	Booking     *BookingHandler
	Payment     *PaymentHandler
	User        *UserHandler
	Doctor      *DoctorHandler

	UserService user.UserService
	AuthCache   *redis.Client
	MongoClient *mongo.Client
}
