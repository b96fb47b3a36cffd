package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/config"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/services"
	jwtutil "github.com/Ishan-giri-05293/private-memory-vault/pkg/jwt"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles login for the single vault account.
type AuthHandler struct {
	Service *services.AuthService
	Config  *config.Config
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(service *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Service: service,
		Config:  cfg,
	}
}

// LoginHandler exchanges email+password for a session token.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.Service.Authenticate(credentials.Email, credentials.Password); err != nil {
		// One generic message for both wrong email and wrong password.
		log.Warn("Authentication failed")
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := jwtutil.GenerateToken(h.Config.AccountEmail, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate session token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	log.Info("Vault account logged in successfully")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"token": token,
	})
}
