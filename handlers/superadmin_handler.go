package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
	"chronosecure/repository"
	util "chronosecure/pkg/utils"
)

// SuperAdminHandler backs the cross-tenant operations console.
type SuperAdminHandler struct {
	companyRepo    repository.CompanyRepository
	userRepo       repository.UserRepository
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	calendarRepo   repository.CalendarRepository
	timeOffRepo    repository.TimeOffRepository
	kioskRepo      repository.KioskRepository
}

func NewSuperAdminHandler(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	attendanceRepo repository.AttendanceRepository,
	calendarRepo repository.CalendarRepository,
	timeOffRepo repository.TimeOffRepository,
	kioskRepo repository.KioskRepository,
) *SuperAdminHandler {
	return &SuperAdminHandler{
		companyRepo:    companyRepo,
		userRepo:       userRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		calendarRepo:   calendarRepo,
		timeOffRepo:    timeOffRepo,
		kioskRepo:      kioskRepo,
	}
}

// ListCompanies godoc
// @Summary List all tenant companies
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Company
// @Router /super-admin/companies [get]
func (h *SuperAdminHandler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.companyRepo.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch companies"})
	}
	return c.Status(fiber.StatusOK).JSON(companies)
}

// GetCompany godoc
// @Summary Get one tenant company
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} models.Company
// @Failure 404 {object} models.ErrorResponse
// @Router /super-admin/companies/{id} [get]
func (h *SuperAdminHandler) GetCompany(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid company id"})
	}

	company, err := h.companyRepo.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found", "reason": "TenantNotFound"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch company"})
	}
	return c.Status(fiber.StatusOK).JSON(company)
}

// UpdateStatus godoc
// @Summary Activate or suspend a tenant
// @Description Suspended tenants are refused at login and at every attendance submission
// @Tags SuperAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param status body models.CompanyStatusPayload true "New status"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /super-admin/companies/{id}/status [put]
func (h *SuperAdminHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid company id"})
	}

	var payload models.CompanyStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := h.companyRepo.UpdateStatus(c.Context(), id, *payload.IsActive); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	action := "suspended"
	if *payload.IsActive {
		action = "activated"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Company " + action})
}

// UpdatePlan godoc
// @Summary Change a tenant's subscription plan
// @Tags SuperAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param plan body models.CompanyPlanPayload true "New plan"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /super-admin/companies/{id}/plan [put]
func (h *SuperAdminHandler) UpdatePlan(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid company id"})
	}

	var payload models.CompanyPlanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := h.companyRepo.UpdatePlan(c.Context(), id, payload.Plan); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Plan updated to " + payload.Plan})
}

// DeleteCompany godoc
// @Summary Permanently delete a tenant and all of its data
// @Description Cascades across users, employees, attendance events, calendar entries, time-off requests and kiosk devices
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /super-admin/companies/{id} [delete]
func (h *SuperAdminHandler) DeleteCompany(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid company id"})
	}

	ctx := c.Context()
	if _, err := h.companyRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found", "reason": "TenantNotFound"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch company"})
	}

	// Scoped collections go first so a failure midway never leaves orphaned
	// data pointing at a deleted company.
	if n, err := h.attendanceRepo.DeleteByCompany(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attendance events"})
	} else {
		log.Printf("Deleted %d attendance events for company %s", n, id.Hex())
	}
	if _, err := h.calendarRepo.DeleteByCompany(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete calendar entries"})
	}
	if _, err := h.timeOffRepo.DeleteByCompany(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete time-off requests"})
	}
	if _, err := h.kioskRepo.DeleteByCompany(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete kiosk devices"})
	}
	if _, err := h.employeeRepo.DeleteByCompany(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete employees"})
	}
	if _, err := h.userRepo.DeleteByCompany(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete users"})
	}
	if err := h.companyRepo.Delete(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete company"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Company and all associated data deleted"})
}
