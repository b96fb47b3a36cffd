package services

import (
	"strings"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/config"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks credentials against the single configured vault
// account. The record stores have no dependency on identity; the whole
// system is single-tenant per deployment.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Authenticate verifies the email and password. On failure it returns
// ErrInvalidCredentials without revealing which field was wrong.
func (s *AuthService) Authenticate(email, password string) error {
	if !strings.EqualFold(strings.TrimSpace(email), s.cfg.AccountEmail) {
		logger.Log.Warn("Login attempt with unknown email")
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AccountPasswordHash), []byte(password)); err != nil {
		logger.Log.Warn("Login attempt with wrong password")
		return ErrInvalidCredentials
	}

	logger.Log.Info("Vault account authenticated")
	return nil
}
