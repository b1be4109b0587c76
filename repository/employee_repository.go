package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"chronosecure/config"
	"chronosecure/models"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, companyID, id primitive.ObjectID) (*models.Employee, error)
	FindActiveByCompany(ctx context.Context, companyID primitive.ObjectID) ([]models.Employee, error)
	CountActiveByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, companyID, id primitive.ObjectID, payload *models.EmployeeUpdatePayload) error
	Deactivate(ctx context.Context, companyID, id primitive.ObjectID) error
	SetPinHash(ctx context.Context, companyID, id primitive.ObjectID, pinHash string) error
	SetBiometricHash(ctx context.Context, companyID, id primitive.ObjectID, templateHash string) error
	DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
}

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository() EmployeeRepository {
	return &employeeRepository{
		collection: config.GetCollection(config.EmployeeCollection),
	}
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error) {
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return res, nil
}

// FindByID is company-scoped: an id belonging to another tenant resolves to
// not-found, never to the other tenant's record.
func (r *employeeRepository) FindByID(ctx context.Context, companyID, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "company_id": companyID}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) FindActiveByCompany(ctx context.Context, companyID primitive.ObjectID) ([]models.Employee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"company_id": companyID, "is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	if len(employees) == 0 {
		return []models.Employee{}, nil
	}
	return employees, nil
}

func (r *employeeRepository) CountActiveByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"company_id": companyID, "is_active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (r *employeeRepository) Update(ctx context.Context, companyID, id primitive.ObjectID, payload *models.EmployeeUpdatePayload) error {
	fields := bson.M{}
	if payload.FirstName != "" {
		fields["first_name"] = payload.FirstName
	}
	if payload.LastName != "" {
		fields["last_name"] = payload.LastName
	}
	if payload.Department != "" {
		fields["department"] = payload.Department
	}
	if payload.Email != "" {
		fields["email"] = payload.Email
	}
	return r.setFields(ctx, companyID, id, fields)
}

// Deactivate is the delete operation: records are kept for the audit trail
// and the event log, only the kiosk stops accepting the employee.
func (r *employeeRepository) Deactivate(ctx context.Context, companyID, id primitive.ObjectID) error {
	return r.setFields(ctx, companyID, id, bson.M{"is_active": false})
}

func (r *employeeRepository) SetPinHash(ctx context.Context, companyID, id primitive.ObjectID, pinHash string) error {
	return r.setFields(ctx, companyID, id, bson.M{"pin_hash": pinHash})
}

func (r *employeeRepository) SetBiometricHash(ctx context.Context, companyID, id primitive.ObjectID, templateHash string) error {
	return r.setFields(ctx, companyID, id, bson.M{"fingerprint_template_hash": templateHash})
}

func (r *employeeRepository) setFields(ctx context.Context, companyID, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "company_id": companyID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *employeeRepository) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete company employees: %w", err)
	}
	return res.DeletedCount, nil
}
