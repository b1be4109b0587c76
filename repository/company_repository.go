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

// ErrTenantNotFound is returned when a company id does not resolve to a
// tenant. Handlers map it to 404 with the TenantNotFound reason code.
var ErrTenantNotFound = errors.New("TenantNotFound: company not found")

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*models.Company, error)
	FindAll(ctx context.Context) ([]models.Company, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, isActive bool) error
	UpdatePlan(ctx context.Context, id primitive.ObjectID, plan string) error
	UpdateSettings(ctx context.Context, id primitive.ObjectID, payload *models.CompanySettingsPayload) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type companyRepository struct {
	collection *mongo.Collection
}

func NewCompanyRepository() CompanyRepository {
	return &companyRepository{
		collection: config.GetCollection(config.CompanyCollection),
	}
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) (*mongo.InsertOneResult, error) {
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return res, nil
}

func (r *companyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Company, error) {
	var company models.Company
	err := r.collection.FindOne(ctx, bson.M{"subdomain": subdomain}).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company by subdomain: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("failed to decode companies: %w", err)
	}
	if len(companies) == 0 {
		return []models.Company{}, nil
	}
	return companies, nil
}

func (r *companyRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, isActive bool) error {
	return r.updateFields(ctx, id, bson.M{"is_active": isActive})
}

func (r *companyRepository) UpdatePlan(ctx context.Context, id primitive.ObjectID, plan string) error {
	return r.updateFields(ctx, id, bson.M{"subscription_plan": plan})
}

func (r *companyRepository) UpdateSettings(ctx context.Context, id primitive.ObjectID, payload *models.CompanySettingsPayload) error {
	fields := bson.M{"overtime_threshold_hours": payload.OvertimeThresholdHours}
	if payload.BillingAddress != "" {
		fields["billing_address"] = payload.BillingAddress
	}
	return r.updateFields(ctx, id, fields)
}

func (r *companyRepository) updateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrTenantNotFound
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrTenantNotFound
	}
	return nil
}
