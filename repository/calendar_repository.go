package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chronosecure/config"
	"chronosecure/models"
)

type CalendarRepository interface {
	BulkUpsert(ctx context.Context, companyID primitive.ObjectID, dates []string, dayType string, payMultiplier float64, description string) (int64, error)
	FindByCompanyAndDate(ctx context.Context, companyID primitive.ObjectID, date string) (*models.CalendarEntry, error)
	FindByCompanyAndDateRange(ctx context.Context, companyID primitive.ObjectID, startDate, endDate string) (map[string]models.CalendarEntry, error)
	DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
}

type calendarRepository struct {
	collection *mongo.Collection
}

func NewCalendarRepository() CalendarRepository {
	return &calendarRepository{
		collection: config.GetCollection(config.CalendarCollection),
	}
}

// BulkUpsert writes one classification over a set of dates in a single
// ordered bulk write keyed on (company_id, date), so readers see either the
// whole write or none of it, and overlapping writes resolve last-writer-wins
// in server receipt order.
func (r *calendarRepository) BulkUpsert(ctx context.Context, companyID primitive.ObjectID, dates []string, dayType string, payMultiplier float64, description string) (int64, error) {
	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(dates))
	for _, date := range dates {
		entry := models.CalendarEntry{
			CompanyID:     companyID,
			Date:          date,
			DayType:       dayType,
			PayMultiplier: payMultiplier,
			Description:   description,
			UpdatedAt:     now,
		}
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"company_id": companyID, "date": date}).
			SetReplacement(entry).
			SetUpsert(true))
	}

	res, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("failed to bulk upsert calendar entries: %w", err)
	}
	return res.ModifiedCount + res.UpsertedCount, nil
}

func (r *calendarRepository) FindByCompanyAndDate(ctx context.Context, companyID primitive.ObjectID, date string) (*models.CalendarEntry, error) {
	var entry models.CalendarEntry
	err := r.collection.FindOne(ctx, bson.M{"company_id": companyID, "date": date}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find calendar entry: %w", err)
	}
	return &entry, nil
}

// FindByCompanyAndDateRange returns explicit entries keyed by date string.
// Dates without an entry are simply absent; resolution of defaults is the
// calendar package's job.
func (r *calendarRepository) FindByCompanyAndDateRange(ctx context.Context, companyID primitive.ObjectID, startDate, endDate string) (map[string]models.CalendarEntry, error) {
	filter := bson.M{
		"company_id": companyID,
		"date":       bson.M{"$gte": startDate, "$lte": endDate},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find calendar entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make(map[string]models.CalendarEntry)
	for cursor.Next(ctx) {
		var entry models.CalendarEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode calendar entry: %w", err)
		}
		entries[entry.Date] = entry
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calendar entries: %w", err)
	}
	return entries, nil
}

func (r *calendarRepository) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete company calendar entries: %w", err)
	}
	return res.DeletedCount, nil
}
