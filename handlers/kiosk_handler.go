package handlers

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
	"chronosecure/pkg/paseto"
	"chronosecure/repository"
	util "chronosecure/pkg/utils"
)

type KioskHandler struct {
	kioskRepo    repository.KioskRepository
	employeeRepo repository.EmployeeRepository
}

func NewKioskHandler(kioskRepo repository.KioskRepository, employeeRepo repository.EmployeeRepository) *KioskHandler {
	return &KioskHandler{kioskRepo: kioskRepo, employeeRepo: employeeRepo}
}

// Register godoc
// @Summary Register a kiosk device
// @Description Issues a device ID and a one-time pairing payload rendered as a QR code
// @Tags Kiosk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param device body models.KioskRegisterPayload true "Device name"
// @Success 201 {object} models.KioskRegisteredResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /kiosk/register [post]
func (h *KioskHandler) Register(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	var payload models.KioskRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	registrationCode, err := util.GenerateBase64Key(32)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate registration code"})
	}

	device := &models.KioskDevice{
		ID:               primitive.NewObjectID(),
		CompanyID:        claims.CompanyID,
		DeviceID:         uuid.NewString(),
		Name:             payload.Name,
		RegistrationCode: registrationCode,
		IsActive:         true,
		CreatedAt:        time.Now(),
	}
	if _, err := h.kioskRepo.Create(c.Context(), device); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register device"})
	}

	pairing, err := json.Marshal(fiber.Map{
		"device_id":         device.DeviceID,
		"registration_code": registrationCode,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build pairing payload"})
	}

	png, err := qrcode.Encode(string(pairing), qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate pairing QR code"})
	}

	return c.Status(fiber.StatusCreated).JSON(models.KioskRegisteredResponse{
		Message:   "Kiosk device registered",
		DeviceID:  device.DeviceID,
		PairingQR: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}

// List godoc
// @Summary List the company's kiosk devices
// @Tags Kiosk
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.KioskDevice
// @Router /kiosk [get]
func (h *KioskHandler) List(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	devices, err := h.kioskRepo.FindByCompany(c.Context(), claims.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch devices"})
	}
	return c.Status(fiber.StatusOK).JSON(devices)
}

// Employees godoc
// @Summary List employees for the kiosk picker
// @Description Minimal active-employee list the kiosk shows on its clock screen
// @Tags Kiosk
// @Produce json
// @Security BearerAuth
// @Success 200 {array} object{id=string,employee_code=string,name=string}
// @Router /kiosk/employees [get]
func (h *KioskHandler) Employees(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	employees, err := h.employeeRepo.FindActiveByCompany(c.Context(), claims.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}

	picker := make([]fiber.Map, 0, len(employees))
	for _, emp := range employees {
		picker = append(picker, fiber.Map{
			"id":            emp.ID.Hex(),
			"employee_code": emp.EmployeeCode,
			"name":          emp.FirstName + " " + emp.LastName,
		})
	}
	return c.Status(fiber.StatusOK).JSON(picker)
}
