package middleware

import (
	"errors"

	"educa/backend/config"
	"educa/backend/models"
	"educa/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const userIDKey = "user_id"

// UserID returns the authenticated user id stored by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(userIDKey).(uint)
	return id
}

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(userIDKey, claims.UserID)
		return c.Next()
	}
}

// AdminMiddleware requires a valid token whose bearer still has the admin
// role in the store. Tokens are stateless, so the role is re-checked here to
// make demotion effective without a server-side session.
func AdminMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Unauthorized",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not query database",
			})
		}
		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden - Admin access required",
			})
		}

		c.Locals(userIDKey, claims.UserID)
		return c.Next()
	}
}
