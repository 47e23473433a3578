package controllers

import (
	"educa/backend/config"
	"educa/backend/models"
	"educa/backend/services"
	"educa/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	Identity *services.IdentityService
	Cfg      *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{
		Identity: services.NewIdentityService(db),
		Cfg:      cfg,
	}
}

// Register godoc
// @Summary Register a new student
// @Description Creates a student account and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body services.RegisterInput true "Registration data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Identity.Register(input)
	if err != nil {
		return serviceError(c, err)
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Role, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  userPayload(user),
	})
}

// Login godoc
// @Summary Student login
// @Description Authenticate a student by email and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	return ac.login(c, "")
}

// AdminLogin godoc
// @Summary Administrator login
// @Description Authenticate an administrator; the credentials must belong to
// an account holding the admin role
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /auth/admin/login [post]
func (ac *AuthController) AdminLogin(c *fiber.Ctx) error {
	return ac.login(c, models.RoleAdmin)
}

func (ac *AuthController) login(c *fiber.Ctx, requiredRole string) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Identity.Authenticate(input.Email, input.Password)
	if err != nil {
		return serviceError(c, err)
	}
	if requiredRole != "" && user.Role != requiredRole {
		return utils.Forbidden(c, "Forbidden - Admin access required")
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Role, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  userPayload(user),
	})
}

func userPayload(user models.User) fiber.Map {
	return fiber.Map{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
		"role":      user.Role,
	}
}
