package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chronosecure/models"
	"chronosecure/pkg/paseto"
	"chronosecure/repository"
	util "chronosecure/pkg/utils"
)

type CompanyHandler struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyHandler(companyRepo repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companyRepo: companyRepo}
}

// Get godoc
// @Summary Get the current company profile
// @Tags Company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Company
// @Failure 404 {object} models.ErrorResponse
// @Router /company [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	company, err := h.companyRepo.FindByID(c.Context(), claims.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found", "reason": "TenantNotFound"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch company"})
	}
	return c.Status(fiber.StatusOK).JSON(company)
}

// UpdateSettings godoc
// @Summary Update company settings
// @Description Sets the overtime threshold used by the hour calculation and the billing address
// @Tags Company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body models.CompanySettingsPayload true "Settings"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /company/settings [put]
func (h *CompanyHandler) UpdateSettings(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	var payload models.CompanySettingsPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := h.companyRepo.UpdateSettings(c.Context(), claims.CompanyID, &payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update settings"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Settings updated"})
}
