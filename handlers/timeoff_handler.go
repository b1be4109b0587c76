package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
	"chronosecure/pkg/paseto"
	"chronosecure/repository"
	util "chronosecure/pkg/utils"
)

type TimeOffHandler struct {
	timeOffRepo  repository.TimeOffRepository
	employeeRepo repository.EmployeeRepository
}

func NewTimeOffHandler(timeOffRepo repository.TimeOffRepository, employeeRepo repository.EmployeeRepository) *TimeOffHandler {
	return &TimeOffHandler{timeOffRepo: timeOffRepo, employeeRepo: employeeRepo}
}

// Create godoc
// @Summary Submit a time-off request
// @Tags TimeOff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TimeOffCreatePayload true "Request data"
// @Success 201 {object} models.TimeOffRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Router /time-off [post]
func (h *TimeOffHandler) Create(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	var payload models.TimeOffCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	employeeID, err := primitive.ObjectIDFromHex(payload.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	ctx := c.Context()
	employee, err := h.employeeRepo.FindByID(ctx, claims.CompanyID, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up employee"})
	}
	if employee == nil || !employee.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found or does not belong to this company"})
	}

	now := time.Now()
	request := &models.TimeOffRequest{
		ID:         primitive.NewObjectID(),
		CompanyID:  claims.CompanyID,
		EmployeeID: employeeID,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
		Reason:     payload.Reason,
		Status:     models.TimeOffPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := h.timeOffRepo.Create(ctx, request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create request"})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// List godoc
// @Summary List the company's time-off requests
// @Tags TimeOff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TimeOffRequest
// @Router /time-off [get]
func (h *TimeOffHandler) List(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	requests, err := h.timeOffRepo.FindByCompany(c.Context(), claims.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch requests"})
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

// UpdateStatus godoc
// @Summary Approve or reject a time-off request
// @Tags TimeOff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param status body models.TimeOffStatusPayload true "New status"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /time-off/{id}/status [put]
func (h *TimeOffHandler) UpdateStatus(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request id"})
	}

	var payload models.TimeOffStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx := c.Context()
	request, err := h.timeOffRepo.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up request"})
	}
	if request == nil || request.CompanyID != claims.CompanyID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Time-off request not found"})
	}

	if err := h.timeOffRepo.UpdateStatus(ctx, id, payload.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update request"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Request " + payload.Status})
}
