package seeder

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
	"chronosecure/pkg/password"
	"chronosecure/repository"
)

// SeedSuperAdmin creates the platform operator account if it does not exist.
// Credentials come from SUPER_ADMIN_EMAIL / SUPER_ADMIN_PASSWORD so a demo
// default never ships to production by accident.
func SeedSuperAdmin(userRepo repository.UserRepository) {
	log.Println("🌱 Seeding super admin...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := os.Getenv("SUPER_ADMIN_EMAIL")
	plain := os.Getenv("SUPER_ADMIN_PASSWORD")
	if email == "" || plain == "" {
		log.Println("⚠️ SUPER_ADMIN_EMAIL or SUPER_ADMIN_PASSWORD not set, skipping super admin seeding.")
		return
	}

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("❌ Failed to check for existing super admin: %v", err)
		return
	}
	if existing != nil {
		log.Println("✅ Super admin already exists, skipping.")
		return
	}

	hashed, err := password.HashPassword(plain)
	if err != nil {
		log.Fatalf("❌ Failed to hash super admin password: %v", err)
	}

	now := time.Now()
	admin := &models.User{
		ID:           primitive.NewObjectID(),
		Name:         "Platform Operator",
		Email:        email,
		Password:     hashed,
		Role:         models.RoleSuperAdmin,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := userRepo.Create(ctx, admin); err != nil {
		log.Printf("❌ Failed to create super admin: %v", err)
		return
	}
	log.Printf("✔ Super admin (%s) created.", admin.Email)
}
