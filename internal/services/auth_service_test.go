package services

import (
	"testing"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("quiet-garden"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(&config.Config{
		AccountEmail:        "me@example.com",
		AccountPasswordHash: string(hash),
	})

	assert.NoError(t, svc.Authenticate("me@example.com", "quiet-garden"))

	// Email comparison ignores case and surrounding whitespace.
	assert.NoError(t, svc.Authenticate("  Me@Example.com ", "quiet-garden"))

	// Wrong email and wrong password return the same opaque error.
	assert.ErrorIs(t, svc.Authenticate("other@example.com", "quiet-garden"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Authenticate("me@example.com", "wrong"), ErrInvalidCredentials)
}
