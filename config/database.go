package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName = "chronosecure-db"

var (
	CompanyCollection    = "companies"
	UserCollection       = "users"
	EmployeeCollection   = "employees"
	AttendanceCollection = "attendance_events"
	CalendarCollection   = "calendar_entries"
	TimeOffCollection    = "time_off_requests"
	KioskCollection      = "kiosk_devices"
)

func MongoConnect() {
	mongoURI := os.Getenv("MONGOSTRING")
	if mongoURI == "" {
		log.Fatal("MONGOSTRING is not set in the environment")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB")
	MongoConn = client
}

// InitDatabase creates the indexes the domain invariants depend on: one
// calendar entry per (company, date), unique employee codes per company,
// unique subdomains, and the event-log query paths.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := MongoConn.Database(DBName)

	indexes := map[string][]mongo.IndexModel{
		CompanyCollection: {
			{Keys: bson.D{{Key: "subdomain", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "company_id", Value: 1}}},
		},
		EmployeeCollection: {
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "employee_code", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		AttendanceCollection: {
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "employee_id", Value: 1}, {Key: "timestamp", Value: 1}}},
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
		CalendarCollection: {
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		TimeOffCollection: {
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "start_date", Value: 1}}},
		},
		KioskCollection: {
			{Keys: bson.D{{Key: "device_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			log.Fatalf("Failed to create indexes for %s: %v", collection, err)
		}
	}

	log.Println("Database indexes ensured")
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB client is not initialized. Call MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnected from MongoDB")
	}
}
