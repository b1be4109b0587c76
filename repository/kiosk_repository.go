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

type KioskRepository interface {
	Create(ctx context.Context, device *models.KioskDevice) (*mongo.InsertOneResult, error)
	FindByDeviceID(ctx context.Context, deviceID string) (*models.KioskDevice, error)
	FindByCompany(ctx context.Context, companyID primitive.ObjectID) ([]models.KioskDevice, error)
	TouchLastSeen(ctx context.Context, deviceID string) error
	DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
}

type kioskRepository struct {
	collection *mongo.Collection
}

func NewKioskRepository() KioskRepository {
	return &kioskRepository{
		collection: config.GetCollection(config.KioskCollection),
	}
}

func (r *kioskRepository) Create(ctx context.Context, device *models.KioskDevice) (*mongo.InsertOneResult, error) {
	device.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, device)
	if err != nil {
		return nil, fmt.Errorf("failed to register kiosk device: %w", err)
	}
	return res, nil
}

func (r *kioskRepository) FindByDeviceID(ctx context.Context, deviceID string) (*models.KioskDevice, error) {
	var device models.KioskDevice
	err := r.collection.FindOne(ctx, bson.M{"device_id": deviceID}).Decode(&device)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find kiosk device: %w", err)
	}
	return &device, nil
}

func (r *kioskRepository) FindByCompany(ctx context.Context, companyID primitive.ObjectID) ([]models.KioskDevice, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, fmt.Errorf("failed to list kiosk devices: %w", err)
	}
	defer cursor.Close(ctx)

	var devices []models.KioskDevice
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, fmt.Errorf("failed to decode kiosk devices: %w", err)
	}
	if len(devices) == 0 {
		return []models.KioskDevice{}, nil
	}
	return devices, nil
}

func (r *kioskRepository) TouchLastSeen(ctx context.Context, deviceID string) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{"last_seen_at": now}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"device_id": deviceID}, update); err != nil {
		return fmt.Errorf("failed to update kiosk last seen: %w", err)
	}
	return nil
}

func (r *kioskRepository) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete company kiosk devices: %w", err)
	}
	return res.DeletedCount, nil
}
