package services

import (
	"fmt"

	"github.com/megaxsolutions/syncorp-sub002/internal/config"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/jwt"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/password"

	"github.com/go-playground/validator/v10"
)

// AuthService issues gateway sessions. Credentials live in config (a
// bcrypt hash); a session is a signed JWT issued at login and discarded
// by the client at logout.
type AuthService struct {
	cfg      *config.Config
	validate *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg, validate: validator.New()}
}

// LoginInput represents login credentials
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued session token
type LoginResult struct {
	AccessToken string `json:"access_token"`
	EmpID       string `json:"emp_id"`
	Role        string `json:"role"`
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	admin := s.cfg.Admin
	if admin.PasswordHash == "" || input.Username != admin.Username ||
		!password.Verify(input.Password, admin.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(admin.Username, admin.EmpID, "ADMIN", s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		EmpID:       admin.EmpID,
		Role:        "ADMIN",
	}, nil
}
