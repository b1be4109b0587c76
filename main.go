package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"chronosecure/config"
	"chronosecure/pkg/paseto"
	"chronosecure/repository"
	"chronosecure/router"
	"chronosecure/seeder"

	_ "chronosecure/docs"
	_ "time/tzdata"
)

// @title ChronoSecure Attendance API
// @version 1.0
// @description Multi-tenant workforce attendance API: clock event logging, hour calculation, tenant calendars and time-off handling
// @termsOfService https://chronosecure.io/terms
//
// @contact.name API Support
// @contact.url https://chronosecure.io/support
// @contact.email support@chronosecure.io
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Tenant signup and console authentication
//
// @tag.name Company
// @tag.description Company profile and settings
//
// @tag.name Employees
// @tag.description Employee management endpoints
//
// @tag.name Attendance
// @tag.description Clock event logging and hour reports
//
// @tag.name Calendar
// @tag.description Tenant calendar classification endpoints
//
// @tag.name TimeOff
// @tag.description Time-off request endpoints
//
// @tag.name Kiosk
// @tag.description Kiosk device pairing and picker endpoints
//
// @tag.name SuperAdmin
// @tag.description Cross-tenant operations console
func main() {
	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	if err := paseto.Init(cfg.PasetoSecret); err != nil {
		log.Fatalf("Failed to initialize token layer: %v", err)
	}

	if os.Getenv("RUN_SEEDER") == "true" {
		userRepo := repository.NewUserRepository()
		seeder.SeedSuperAdmin(userRepo)
		seeder.SeedDemoCompany(
			repository.NewCompanyRepository(),
			userRepo,
			repository.NewEmployeeRepository(),
			repository.NewCalendarRepository(),
		)
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	router.SetupRoutes(app)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
