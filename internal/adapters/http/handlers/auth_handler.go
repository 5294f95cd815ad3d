package handlers

import (
	"errors"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles gateway session endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies credentials and issues a session token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "username and password are required")
	}

	result, err := h.authService.Login(input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid username or password")
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "username and password are required")
		}
		return response.InternalServerError(c, "Failed to log in")
	}

	return response.Success(c, "Logged in", result)
}

// Logout acknowledges session teardown; tokens are stateless, so the
// client discards its copy.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return response.Success(c, "Logged out", nil)
}
