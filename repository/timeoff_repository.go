package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chronosecure/config"
	"chronosecure/models"
)

type TimeOffRepository interface {
	Create(ctx context.Context, request *models.TimeOffRequest) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.TimeOffRequest, error)
	FindByCompany(ctx context.Context, companyID primitive.ObjectID) ([]models.TimeOffRequest, error)
	FindApprovedForEmployeeBetween(ctx context.Context, employeeID primitive.ObjectID, startDate, endDate string) ([]models.TimeOffRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	CountPendingByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
	AutoRejectOverlapping(ctx context.Context, employeeID primitive.ObjectID, date string) (int64, error)
	DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
}

type timeOffRepository struct {
	collection *mongo.Collection
}

func NewTimeOffRepository() TimeOffRepository {
	return &timeOffRepository{
		collection: config.GetCollection(config.TimeOffCollection),
	}
}

func (r *timeOffRepository) Create(ctx context.Context, request *models.TimeOffRequest) (*mongo.InsertOneResult, error) {
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create time-off request: %w", err)
	}
	return res, nil
}

func (r *timeOffRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TimeOffRequest, error) {
	var request models.TimeOffRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find time-off request: %w", err)
	}
	return &request, nil
}

func (r *timeOffRepository) FindByCompany(ctx context.Context, companyID primitive.ObjectID) ([]models.TimeOffRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-off requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.TimeOffRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode time-off requests: %w", err)
	}
	if len(requests) == 0 {
		return []models.TimeOffRequest{}, nil
	}
	return requests, nil
}

// FindApprovedForEmployeeBetween returns approved requests overlapping the
// [startDate, endDate] window. Date strings compare correctly because they
// are zero-padded ISO dates.
func (r *timeOffRepository) FindApprovedForEmployeeBetween(ctx context.Context, employeeID primitive.ObjectID, startDate, endDate string) ([]models.TimeOffRequest, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"status":      models.TimeOffApproved,
		"start_date":  bson.M{"$lte": endDate},
		"end_date":    bson.M{"$gte": startDate},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find approved time off: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.TimeOffRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode approved time off: %w", err)
	}
	return requests, nil
}

func (r *timeOffRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	if _, err := r.collection.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update time-off status: %w", err)
	}
	return nil
}

func (r *timeOffRepository) CountPendingByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"company_id": companyID, "status": models.TimeOffPending})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}
	return count, nil
}

// AutoRejectOverlapping rejects pending or approved requests covering the
// given date. Called when an attendance event is recorded: showing up on a
// day invalidates the leave request for it.
func (r *timeOffRepository) AutoRejectOverlapping(ctx context.Context, employeeID primitive.ObjectID, date string) (int64, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"status":      bson.M{"$in": bson.A{models.TimeOffPending, models.TimeOffApproved}},
		"start_date":  bson.M{"$lte": date},
		"end_date":    bson.M{"$gte": date},
	}
	update := bson.M{"$set": bson.M{
		"status":     models.TimeOffRejected,
		"updated_at": time.Now(),
	}}

	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to auto-reject time-off requests: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *timeOffRepository) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete company time-off requests: %w", err)
	}
	return res.DeletedCount, nil
}
