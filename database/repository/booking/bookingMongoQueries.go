// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fixv/database"
	"fixv/models"
	"fixv/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// GetAppointment retrieves an appointment. Returns nil, nil when no
// appointment matches.
func (r *MongoBookingRepo) GetAppointment(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.appointments.FindOne(ctx, bson.M{"appointmentId": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// ListAppointmentsByUser retrieves a user's appointments. New documents
// reference the user with the canonical typed ref; historical documents hold
// a bare uid string or a "/Users/<uid>" path string, so those encodings are
// tried in order until one matches.
func (r *MongoBookingRepo) ListAppointmentsByUser(userID string) ([]models.Appointment, error) {
	filters := []bson.M{
		{"userId.id": userID},
		{"userId": userID},
		{"userId": "/" + database.UsersCollection + "/" + userID},
	}

	for i, filter := range filters {
		appts, err := r.findAppointments(filter)
		if err != nil {
			return nil, err
		}
		if len(appts) > 0 {
			if i > 0 {
				utils.GetLogger().Debug("appointments matched a legacy userId encoding",
					zap.String("userId", userID), zap.Int("encoding", i))
			}
			return appts, nil
		}
	}
	return nil, nil
}

func (r *MongoBookingRepo) findAppointments(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.appointments.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// UpdateAppointmentSchedule changes the date and time of an appointment.
func (r *MongoBookingRepo) UpdateAppointmentSchedule(id, date, timeOfDay string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"date": date, "time": timeOfDay}}
	result, err := r.appointments.UpdateOne(ctx, bson.M{"appointmentId": id}, update)
	if err != nil {
		return fmt.Errorf("failed to reschedule appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

// DeleteAppointment removes an appointment document.
func (r *MongoBookingRepo) DeleteAppointment(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.appointments.DeleteOne(ctx, bson.M{"appointmentId": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

// GetInvoice retrieves an invoice. Returns nil, nil when no invoice matches.
func (r *MongoBookingRepo) GetInvoice(id string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.Invoice
	if err := r.invoices.FindOne(ctx, bson.M{"invoiceId": id}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &inv, nil
}

// GetTransaction retrieves a payment transaction. Returns nil, nil when no
// transaction matches.
func (r *MongoBookingRepo) GetTransaction(id string) (*models.PaymentTransaction, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var txn models.PaymentTransaction
	if err := r.transactions.FindOne(ctx, bson.M{"transactionId": id}).Decode(&txn); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch transaction with id %s: %w", id, err)
	}
	return &txn, nil
}

// SetTransactionStatus updates a transaction's payment_status.
func (r *MongoBookingRepo) SetTransactionStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"payment_status": status}}
	result, err := r.transactions.UpdateOne(ctx, bson.M{"transactionId": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("transaction with id %s not found", id)
	}
	return nil
}

// refFilter matches a stored reference field in any encoding written over
// the app's lifetime: canonical sub-document, bare id string, or a path
// string with or without a leading slash.
func refFilter(field, collection, id string) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{field + ".id": id},
			bson.M{field: id},
			bson.M{field: collection + "/" + id},
			bson.M{field: "/" + collection + "/" + id},
		},
	}
}

// VoidOrphanedTransactions voids pending transactions created before the
// cutoff whose appointment no longer exists. These are the leftovers of a
// cancellation whose second, compensating write failed.
func (r *MongoBookingRepo) VoidOrphanedTransactions(ctx context.Context, olderThan time.Time) (int, error) {
	filter := bson.M{
		"payment_status": models.PaymentStatusPending,
		"createdAt":      bson.M{"$lt": olderThan},
	}

	cursor, err := r.transactions.Find(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	defer cursor.Close(ctx)

	voided := 0
	for cursor.Next(ctx) {
		var txn models.PaymentTransaction
		if err := cursor.Decode(&txn); err != nil {
			return voided, fmt.Errorf("failed to decode transaction: %w", err)
		}

		liveness := refFilter("transactionId", database.PaymentTransactionsCollection, txn.TransactionID)
		count, err := r.appointments.CountDocuments(ctx, liveness)
		if err != nil {
			return voided, fmt.Errorf("failed to check appointment for transaction %s: %w", txn.TransactionID, err)
		}
		if count > 0 {
			continue
		}

		if err := r.SetTransactionStatus(txn.TransactionID, models.PaymentStatusVoid); err != nil {
			return voided, err
		}
		voided++
	}
	return voided, nil
}
