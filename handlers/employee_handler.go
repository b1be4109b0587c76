package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"chronosecure/models"
	"chronosecure/pkg/paseto"
	"chronosecure/pkg/password"
	"chronosecure/repository"
	util "chronosecure/pkg/utils"
)

type EmployeeHandler struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{employeeRepo: employeeRepo}
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// Create godoc
// @Summary Create an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body models.EmployeeCreatePayload true "Employee data"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Employee code already in use"
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	now := time.Now()
	employee := &models.Employee{
		ID:           primitive.NewObjectID(),
		CompanyID:    claims.CompanyID,
		EmployeeCode: payload.EmployeeCode,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Department:   payload.Department,
		Email:        payload.Email,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := h.employeeRepo.Create(c.Context(), employee); err != nil {
		// The unique index on (company_id, employee_code) surfaces here.
		if isDuplicateKey(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Employee code is already in use"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee"})
	}

	return c.Status(fiber.StatusCreated).JSON(employee)
}

// List godoc
// @Summary List active employees
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Employee
// @Router /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	employees, err := h.employeeRepo.FindActiveByCompany(c.Context(), claims.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}
	return c.Status(fiber.StatusOK).JSON(employees)
}

// Get godoc
// @Summary Get one employee
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	employee, err := h.employeeRepo.FindByID(c.Context(), claims.CompanyID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.Status(fiber.StatusOK).JSON(employee)
}

// Update godoc
// @Summary Update an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param employee body models.EmployeeUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := h.employeeRepo.Update(c.Context(), claims.CompanyID, id, &payload); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Employee updated"})
}

// Deactivate godoc
// @Summary Deactivate an employee
// @Description Soft delete. Attendance history is append only and stays intact.
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Deactivate(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	if err := h.employeeRepo.Deactivate(c.Context(), claims.CompanyID, id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Employee deactivated"})
}

// SetPin godoc
// @Summary Set an employee's kiosk PIN
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param pin body models.EmployeePinPayload true "New PIN"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id}/pin [put]
func (h *EmployeeHandler) SetPin(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var payload models.EmployeePinPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	pinHash, err := password.HashPassword(payload.Pin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash PIN"})
	}
	if err := h.employeeRepo.SetPinHash(c.Context(), claims.CompanyID, id, pinHash); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "PIN updated"})
}

// EnrollBiometric godoc
// @Summary Enroll an employee's fingerprint template
// @Description Stores only the template hash computed on the kiosk. Raw biometric data never reaches this service.
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param template body models.BiometricEnrollPayload true "Template hash"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id}/biometric [put]
func (h *EmployeeHandler) EnrollBiometric(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var payload models.BiometricEnrollPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := h.employeeRepo.SetBiometricHash(c.Context(), claims.CompanyID, id, payload.TemplateHash); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Biometric template enrolled"})
}
