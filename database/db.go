package database

import (
	"context"
	"log"
	"time"

	"fixv/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. These match the document layout the mobile clients
// already write, including the historical casing.
const (
	UsersCollection               = "Users"
	VehiclesCollection            = "Vehicles"
	MechanicShopsCollection       = "mechanic_shops"
	ServicesCollection            = "services"
	ShopServicesCollection        = "shop_services"
	AppointmentsCollection        = "appointments"
	InvoicesCollection            = "invoices"
	PaymentTransactionsCollection = "payment_transactions"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// Collection returns a handle to a named collection in the configured database.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(config.AppConfig.DatabaseName).Collection(name)
}
