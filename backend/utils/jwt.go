package utils

import (
	"strings"
	"time"

	"educa/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims is what a verified session token asserts about its bearer.
type TokenClaims struct {
	UserID uint
	Role   string
}

func GenerateJWTToken(userID uint, role string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Duration(cfg.TokenTTLHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractClaimsFromToken verifies the bearer token on the request. Any
// failure (missing, malformed, bad signature, expired) leaves the caller
// anonymous.
func ExtractClaimsFromToken(c *fiber.Ctx, cfg *config.Config) (TokenClaims, error) {
	tokenString := c.Get("Authorization")
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		return TokenClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return TokenClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return TokenClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	role, _ := claims["role"].(string)

	return TokenClaims{UserID: uint(userIDFloat), Role: role}, nil
}
