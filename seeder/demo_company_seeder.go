package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
	"chronosecure/pkg/attendance"
	"chronosecure/pkg/password"
	"chronosecure/repository"
)

// SeedDemoCompany creates the "acme" demo tenant with an admin login, a
// handful of employees and this year's public holidays, so a fresh install
// has something to click around in. Safe to run repeatedly.
func SeedDemoCompany(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	calendarRepo repository.CalendarRepository,
) {
	log.Println("🌱 Seeding demo company...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	existing, err := companyRepo.FindBySubdomain(ctx, "acme")
	if err != nil {
		log.Printf("❌ Failed to check for demo company: %v", err)
		return
	}
	if existing != nil {
		log.Println("✅ Demo company already exists, skipping.")
		return
	}

	now := time.Now()
	company := &models.Company{
		ID:                     primitive.NewObjectID(),
		Name:                   "Acme Manufacturing",
		Subdomain:              "acme",
		IsActive:               true,
		SubscriptionPlan:       models.PlanPro,
		OvertimeThresholdHours: attendance.DefaultOvertimeThreshold,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if _, err := companyRepo.Create(ctx, company); err != nil {
		log.Printf("❌ Failed to create demo company: %v", err)
		return
	}

	hashed, err := password.HashPassword("Password123")
	if err != nil {
		log.Fatalf("❌ Failed to hash demo password: %v", err)
	}
	admin := &models.User{
		ID:           primitive.NewObjectID(),
		CompanyID:    company.ID,
		Name:         "Demo Admin",
		Email:        "admin@acme.example.com",
		Password:     hashed,
		Role:         models.RoleCompanyAdmin,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := userRepo.Create(ctx, admin); err != nil {
		log.Printf("❌ Failed to create demo admin: %v", err)
		return
	}
	log.Printf("✔ Demo admin (%s) created.", admin.Email)

	demoEmployees := []struct {
		code, first, last, dept string
	}{
		{"EMP001", "Ana", "Silva", "Assembly"},
		{"EMP002", "Marcus", "Chen", "Assembly"},
		{"EMP003", "Priya", "Patel", "Quality Control"},
		{"EMP004", "Tom", "Okafor", "Warehouse"},
		{"EMP005", "Lena", "Fischer", "Warehouse"},
	}
	for _, e := range demoEmployees {
		employee := &models.Employee{
			ID:           primitive.NewObjectID(),
			CompanyID:    company.ID,
			EmployeeCode: e.code,
			FirstName:    e.first,
			LastName:     e.last,
			Department:   e.dept,
			Email:        fmt.Sprintf("%s@acme.example.com", e.code),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := employeeRepo.Create(ctx, employee); err != nil {
			log.Printf("❌ Failed to create demo employee %s: %v", e.code, err)
			continue
		}
		log.Printf("✔ Employee %s %s (%s) created.", e.first, e.last, e.code)
	}

	year := now.Year()
	holidays := []string{
		fmt.Sprintf("%d-01-01", year),
		fmt.Sprintf("%d-05-01", year),
		fmt.Sprintf("%d-12-25", year),
		fmt.Sprintf("%d-12-26", year),
	}
	if _, err := calendarRepo.BulkUpsert(ctx, company.ID, holidays, models.DayTypeHoliday, 2.0, "Public holiday"); err != nil {
		log.Printf("❌ Failed to seed holiday calendar: %v", err)
		return
	}
	log.Printf("✔ %d public holidays written for %d.", len(holidays), year)

	log.Println("✅ Demo company seeding finished.")
}
