package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"chronosecure/config/middleware"
	"chronosecure/handlers"
	"chronosecure/repository"

	_ "chronosecure/docs"
)

func SetupRoutes(app *fiber.App) {
	log.Println("Registering application routes...")

	// Repositories
	companyRepo := repository.NewCompanyRepository()
	userRepo := repository.NewUserRepository()
	employeeRepo := repository.NewEmployeeRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	calendarRepo := repository.NewCalendarRepository()
	timeOffRepo := repository.NewTimeOffRepository()
	kioskRepo := repository.NewKioskRepository()

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, companyRepo)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, employeeRepo, companyRepo, timeOffRepo, kioskRepo, calendarRepo)
	calendarHandler := handlers.NewCalendarHandler(calendarRepo, attendanceRepo, timeOffRepo, employeeRepo)
	timeOffHandler := handlers.NewTimeOffHandler(timeOffRepo, employeeRepo)
	kioskHandler := handlers.NewKioskHandler(kioskRepo, employeeRepo)
	superAdminHandler := handlers.NewSuperAdminHandler(companyRepo, userRepo, employeeRepo, attendanceRepo, calendarRepo, timeOffRepo, kioskRepo)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ChronoSecure Attendance API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", middleware.AuthMiddleware(), authHandler.ChangePassword)

	// Company profile & settings (admin only)
	companyGroup := api.Group("/company", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	companyGroup.Get("/", companyHandler.Get)
	companyGroup.Put("/settings", companyHandler.UpdateSettings)

	// Employee management (admin only)
	employeeGroup := api.Group("/employees", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	employeeGroup.Post("/", employeeHandler.Create)
	employeeGroup.Get("/", employeeHandler.List)
	employeeGroup.Get("/:id", employeeHandler.Get)
	employeeGroup.Put("/:id", employeeHandler.Update)
	employeeGroup.Delete("/:id", employeeHandler.Deactivate)
	employeeGroup.Put("/:id/pin", employeeHandler.SetPin)
	employeeGroup.Put("/:id/biometric", employeeHandler.EnrollBiometric)

	// Attendance: kiosks and admins both submit with a tenant token
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Post("/log", attendanceHandler.LogEvent)
	attendanceGroup.Get("/next-event/:employeeID", attendanceHandler.NextEvent)
	adminAttendanceGroup := attendanceGroup.Group("/", middleware.AdminMiddleware())
	adminAttendanceGroup.Get("/logs", attendanceHandler.GetLogs)
	adminAttendanceGroup.Get("/today-stats", attendanceHandler.TodayStats)
	adminAttendanceGroup.Get("/hours/:employeeID", attendanceHandler.GetHours)

	// Calendar
	calendarGroup := api.Group("/calendar", middleware.AuthMiddleware())
	calendarGroup.Get("/", calendarHandler.GetRange)
	calendarGroup.Get("/employee/:employeeID", calendarHandler.EmployeeView)
	calendarGroup.Post("/", middleware.AdminMiddleware(), calendarHandler.BulkSet)

	// Time off
	timeOffGroup := api.Group("/time-off", middleware.AuthMiddleware())
	timeOffGroup.Post("/", timeOffHandler.Create)
	adminTimeOffGroup := timeOffGroup.Group("/", middleware.AdminMiddleware())
	adminTimeOffGroup.Get("/", timeOffHandler.List)
	adminTimeOffGroup.Put("/:id/status", timeOffHandler.UpdateStatus)

	// Kiosk devices
	kioskGroup := api.Group("/kiosk", middleware.AuthMiddleware())
	kioskGroup.Get("/employees", kioskHandler.Employees)
	adminKioskGroup := kioskGroup.Group("/", middleware.AdminMiddleware())
	adminKioskGroup.Post("/register", kioskHandler.Register)
	adminKioskGroup.Get("/", kioskHandler.List)

	// Cross-tenant operations console
	superAdminGroup := api.Group("/super-admin", middleware.AuthMiddleware(), middleware.SuperAdminMiddleware())
	superAdminGroup.Get("/companies", superAdminHandler.ListCompanies)
	superAdminGroup.Get("/companies/:id", superAdminHandler.GetCompany)
	superAdminGroup.Put("/companies/:id/status", superAdminHandler.UpdateStatus)
	superAdminGroup.Put("/companies/:id/plan", superAdminHandler.UpdatePlan)
	superAdminGroup.Delete("/companies/:id", superAdminHandler.DeleteCompany)

	log.Println("All application routes registered.")
	log.Println("Swagger documentation available at: /docs/index.html")
}
