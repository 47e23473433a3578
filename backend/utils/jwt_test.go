package utils

import (
	"net/http/httptest"
	"testing"

	"educa/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func claimsApp(cfg *config.Config) (*fiber.App, *TokenClaims, *error) {
	var claims TokenClaims
	var claimsErr error

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		claims, claimsErr = ExtractClaimsFromToken(c, cfg)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &claims, &claimsErr
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret", TokenTTLHours: 1}

	token, err := GenerateJWTToken(42, "admin", cfg)
	assert.NoError(t, err)

	app, claims, claimsErr := claimsApp(cfg)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, err = app.Test(req)
	assert.NoError(t, err)

	assert.NoError(t, *claimsErr)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenVerificationFailures(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret", TokenTTLHours: 1}

	token, err := GenerateJWTToken(42, "student", cfg)
	assert.NoError(t, err)

	cases := map[string]string{
		"missing":      "",
		"malformed":    "not-a-token",
		"tampered":     token + "x",
		"wrong secret": mustToken(t, 42, "admin", &config.Config{JWTSecret: "othersecret", TokenTTLHours: 1}),
		"expired":      mustToken(t, 42, "admin", &config.Config{JWTSecret: "testsecret", TokenTTLHours: -1}),
	}

	for name, bad := range cases {
		app, _, claimsErr := claimsApp(cfg)
		req := httptest.NewRequest("GET", "/", nil)
		if bad != "" {
			req.Header.Set("Authorization", "Bearer "+bad)
		}
		_, err := app.Test(req)
		assert.NoError(t, err)
		assert.Error(t, *claimsErr, "case %q should fail verification", name)
	}
}

func mustToken(t *testing.T, userID uint, role string, cfg *config.Config) string {
	t.Helper()
	token, err := GenerateJWTToken(userID, role, cfg)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}
