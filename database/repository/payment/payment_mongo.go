package paymentRepo

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

// ErrDuplicateTransaction is returned when a payment resubmission carries a
// transactionId that was already recorded.
var ErrDuplicateTransaction = fmt.Errorf("payment transaction already recorded")

// MongoPaymentRepo implements PaymentRepository using MongoDB. It holds
// both the Payments and the Booking collection because recording a payment
// spans the two.
type MongoPaymentRepo struct {
	paymentColl *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoPaymentRepo creates a new PaymentRepository.
func NewMongoPaymentRepo(client *mongo.Client) PaymentRepository {
	db := database.DB(client)
	repo := &MongoPaymentRepo{
		paymentColl: db.Collection(database.PaymentCollection),
		bookingColl: db.Collection(database.BookingCollection),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique transactionId index that dedupes
// payment resubmissions.
func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
	}

	_, err := r.paymentColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// paymentInserter and bookingUpdater are the collection operations the
// payment transaction needs. *mongo.Collection satisfies both.
type paymentInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type bookingUpdater interface {
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// applyPayment is the transaction body: it inserts the payment, then
// flips the referenced booking to paid with the transaction id. A
// duplicate transactionId or an unknown booking returns an error, which
// aborts the surrounding transaction.
func applyPayment(ctx context.Context, payments paymentInserter, bookings bookingUpdater, payment *models.Payment) error {
	res, err := payments.InsertOne(ctx, payment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("insert payment failed: %w", err)
	}
	if res.InsertedID == nil {
		return fmt.Errorf("payment insert returned no identifier")
	}

	filter := bson.M{"id": payment.BookingID}
	update := bson.M{
		"$set": bson.M{
			"paid":          true,
			"transactionId": payment.TransactionID,
		},
	}
	upd, err := bookings.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("mark booking paid failed: %w", err)
	}
	if upd.MatchedCount == 0 {
		return fmt.Errorf("no booking found with id %s", payment.BookingID)
	}
	return nil
}

// Record inserts the payment and marks the referenced booking paid in one
// Mongo transaction, so an interruption cannot leave a payment recorded
// without the booking flagged, or vice versa.
func (r *MongoPaymentRepo) Record(ctx context.Context, payment *models.Payment) (string, error) {
	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return "", fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	payment.CreatedAt = time.Now()

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := applyPayment(sc, r.paymentColl, r.bookingColl, payment); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrDuplicateTransaction {
			return "", err
		}
		return "", fmt.Errorf("payment transaction failed: %w", err)
	}

	return payment.ID, nil
}

// GetByBookingID returns the payments recorded against a booking.
func (r *MongoPaymentRepo) GetByBookingID(bookingID string) ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.paymentColl.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var p models.Payment
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading payments: %w", err)
	}
	return payments, nil
}
