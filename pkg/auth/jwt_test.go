package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	s := &JWTService{}

	token, err := s.GenerateJWT(42, "agent", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.AgentID)
	assert.Equal(t, "agent", claims.Role)
	assert.Equal(t, "roomdesk", claims.Issuer)
}

func TestValidateToken_Invalid(t *testing.T) {
	s := &JWTService{}

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbage token", token: "not-a-token"},
		{name: "Empty token", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := s.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	s := &JWTService{}

	token, err := s.GenerateJWT(42, "agent", time.Now().Add(-time.Hour))
	assert.NoError(t, err)

	claims, err := s.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestSetSecret(t *testing.T) {
	s := &JWTService{}
	defer SetSecret("your-secret-key")

	token, err := s.GenerateJWT(42, "agent", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	SetSecret("rotated-secret")

	// Tokens signed under the old key stop validating.
	claims, err := s.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	token, err = s.GenerateJWT(42, "agent", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	claims, err = s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.AgentID)

	// Blank configuration keeps the current key.
	SetSecret("")
	claims, err = s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.AgentID)
}

func TestValidateToken_ZeroAgentID(t *testing.T) {
	s := &JWTService{}

	token, err := s.GenerateJWT(0, "agent", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	claims, err := s.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
