package bookingRepo

import (
	"context"
	"fmt"

	"fixv/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookAppointment commits the three documents of one booking inside a single
// multi-document transaction. The transaction body also reads the user, shop
// and vehicle documents to populate denormalized display fields; those reads
// never fail the commit, they only fall back to placeholder strings.
func (r *MongoBookingRepo) BookAppointment(ctx context.Context, set *models.BookingSet) (*models.BookingReads, error) {
	client := r.appointments.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	reads := &models.BookingReads{
		UserName:       "Unknown User",
		ShopName:       "Unknown Shop",
		VehicleDetails: "Unknown Vehicle",
	}

	txnFn := func(sc mongo.SessionContext) error {
		var user models.User
		if err := r.users.FindOne(sc, bson.M{"id": set.Transaction.UserID.ID}).Decode(&user); err == nil && user.Name != "" {
			reads.UserName = user.Name
		}
		var shop models.MechanicShop
		if err := r.shops.FindOne(sc, bson.M{"id": set.Transaction.ShopID.ID}).Decode(&shop); err == nil && shop.Name != "" {
			reads.ShopName = shop.Name
		}
		var vehicle models.Vehicle
		if err := r.vehicles.FindOne(sc, bson.M{"id": set.Appointment.VehicleID.ID}).Decode(&vehicle); err == nil {
			reads.VehicleDetails = vehicle.Description()
		}

		if _, err := r.transactions.InsertOne(sc, set.Transaction); err != nil {
			return fmt.Errorf("insert payment transaction failed: %w", err)
		}
		if _, err := r.appointments.InsertOne(sc, set.Appointment); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		if _, err := r.invoices.InsertOne(sc, set.Invoice); err != nil {
			return fmt.Errorf("insert invoice failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	return reads, nil
}
