package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
	"chronosecure/pkg/attendance"
	"chronosecure/pkg/paseto"
	"chronosecure/pkg/password"
	"chronosecure/repository"
	util "chronosecure/pkg/utils"
)

type AuthHandler struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

func NewAuthHandler(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, companyRepo: companyRepo}
}

// Signup godoc
// @Summary Register a new company tenant
// @Description Creates a company together with its first admin user. The subdomain must be unique across all tenants.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body models.CompanySignupPayload true "Company signup data"
// @Success 201 {object} models.SignupSuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Subdomain or email already taken"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var payload models.CompanySignupPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx := c.Context()

	existing, err := h.companyRepo.FindBySubdomain(ctx, payload.Subdomain)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check subdomain"})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Subdomain is already taken"})
	}

	existingUser, err := h.userRepo.FindByEmail(ctx, payload.AdminEmail)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check email"})
	}
	if existingUser != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email is already registered"})
	}

	hashed, err := password.HashPassword(payload.AdminPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	now := time.Now()
	company := &models.Company{
		ID:                     primitive.NewObjectID(),
		Name:                   payload.CompanyName,
		Subdomain:              payload.Subdomain,
		IsActive:               true,
		SubscriptionPlan:       models.PlanFree,
		OvertimeThresholdHours: attendance.DefaultOvertimeThreshold,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if _, err := h.companyRepo.Create(ctx, company); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create company"})
	}

	admin := &models.User{
		ID:           primitive.NewObjectID(),
		CompanyID:    company.ID,
		Name:         payload.AdminName,
		Email:        payload.AdminEmail,
		Password:     hashed,
		Role:         models.RoleCompanyAdmin,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := h.userRepo.Create(ctx, admin); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create admin user"})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SignupSuccessResponse{
		Message:   "Company registered",
		CompanyID: company.ID.Hex(),
		UserID:    admin.ID.Hex(),
	})
}

// Login godoc
// @Summary Log in to the admin console
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body models.UserLoginPayload true "Credentials"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 403 {object} models.RejectionResponse "Company suspended"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx := c.Context()

	user, err := h.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up user"})
	}
	if user == nil || !password.CheckPassword(user.Password, payload.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	// Super admins are not tied to a tenant; everyone else is blocked when
	// their company is suspended.
	if user.Role != models.RoleSuperAdmin {
		company, err := h.companyRepo.FindByID(ctx, user.CompanyID)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found", "reason": "TenantNotFound"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up company"})
		}
		if !company.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  "Your company account is suspended. Contact support.",
				"reason": attendance.ReasonTenantInactive,
			})
		}
	}

	token, err := paseto.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusOK).JSON(models.LoginSuccessResponse{
		Message:   "Login successful",
		Token:     token,
		UserID:    user.ID.Hex(),
		CompanyID: user.CompanyID.Hex(),
		Role:      user.Role,
	})
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param change body models.ChangePasswordPayload true "Old and new password"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse "Old password wrong"
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx := c.Context()
	user, err := h.userRepo.FindByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if !password.CheckPassword(user.Password, payload.OldPassword) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Old password is incorrect"})
	}

	hashed, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := h.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password updated"})
}
