package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chronosecure/config"
	"chronosecure/models"
)

type AttendanceRepository interface {
	// LockEmployee serializes event validation+append per (company, employee)
	// so two concurrent submissions cannot both observe the same prior state.
	// The returned function releases the lock.
	LockEmployee(companyID, employeeID primitive.ObjectID) func()

	Append(ctx context.Context, event *models.AttendanceEvent) (*mongo.InsertOneResult, error)
	FindEmployeeEventsBetween(ctx context.Context, companyID, employeeID primitive.ObjectID, start, end time.Time) ([]models.AttendanceEvent, error)
	FindCompanyEventsBetween(ctx context.Context, companyID primitive.ObjectID, start, end time.Time) ([]models.AttendanceEvent, error)
	FindLogsWithEmployee(ctx context.Context, companyID primitive.ObjectID, start, end time.Time, page, limit int64) ([]models.AttendanceEventWithEmployee, int64, error)
	DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
}

type attendanceRepository struct {
	collection *mongo.Collection
	locks      sync.Map
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		collection: config.GetCollection(config.AttendanceCollection),
	}
}

func (r *attendanceRepository) LockEmployee(companyID, employeeID primitive.ObjectID) func() {
	key := companyID.Hex() + "/" + employeeID.Hex()
	mu, _ := r.locks.LoadOrStore(key, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()
	return lock.Unlock
}

// Append inserts one event into the append-only log. Events are never
// updated or deleted afterwards.
func (r *attendanceRepository) Append(ctx context.Context, event *models.AttendanceEvent) (*mongo.InsertOneResult, error) {
	event.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to append attendance event: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindEmployeeEventsBetween(ctx context.Context, companyID, employeeID primitive.ObjectID, start, end time.Time) ([]models.AttendanceEvent, error) {
	filter := bson.M{
		"company_id":  companyID,
		"employee_id": employeeID,
		"timestamp":   bson.M{"$gte": start, "$lt": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.AttendanceEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode employee events: %w", err)
	}
	return events, nil
}

func (r *attendanceRepository) FindCompanyEventsBetween(ctx context.Context, companyID primitive.ObjectID, start, end time.Time) ([]models.AttendanceEvent, error) {
	filter := bson.M{
		"company_id": companyID,
		"timestamp":  bson.M{"$gte": start, "$lt": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find company events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.AttendanceEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode company events: %w", err)
	}
	return events, nil
}

// FindLogsWithEmployee is the admin log view: events joined with employee
// name, code and department, newest first, paginated.
func (r *attendanceRepository) FindLogsWithEmployee(ctx context.Context, companyID primitive.ObjectID, start, end time.Time, page, limit int64) ([]models.AttendanceEventWithEmployee, int64, error) {
	filter := bson.M{
		"company_id": companyID,
		"timestamp":  bson.M{"$gte": start, "$lt": end},
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance events: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "timestamp", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.EmployeeCollection},
			{Key: "localField", Value: "employee_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "employeeDetails"},
		}}},
		{{Key: "$unwind", Value: "$employeeDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "employee_id", Value: 1},
			{Key: "event_type", Value: 1},
			{Key: "timestamp", Value: 1},
			{Key: "device_id", Value: 1},
			{Key: "photo_verified", Value: 1},
			{Key: "biometric_verified", Value: 1},
			{Key: "confidence_score", Value: 1},
			{Key: "employee_code", Value: "$employeeDetails.employee_code"},
			{Key: "employee_name", Value: bson.D{{Key: "$concat", Value: bson.A{
				"$employeeDetails.first_name", " ", "$employeeDetails.last_name",
			}}}},
			{Key: "department", Value: "$employeeDetails.department"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate attendance logs: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceEventWithEmployee
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode attendance logs: %w", err)
	}
	if len(results) == 0 {
		return []models.AttendanceEventWithEmployee{}, total, nil
	}
	return results, total, nil
}

func (r *attendanceRepository) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete company attendance events: %w", err)
	}
	return res.DeletedCount, nil
}
