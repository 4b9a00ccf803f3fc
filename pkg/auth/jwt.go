package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Tokens are issued by the session service; this package only validates them.

type JWTServiceInterface interface {
	GenerateJWT(agentID int, role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("your-secret-key")

// SetSecret installs the signing key from configuration. Called once at
// startup, before the server accepts requests.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

const RoleAdmin = "admin"

type Claims struct {
	AgentID int    `json:"agent_id"`
	Role    string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct{}

// GenerateJWT exists for tests and local tooling; production tokens come
// from the session service.
func (s *JWTService) GenerateJWT(agentID int, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		AgentID: agentID,
		Role:    role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "roomdesk",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AgentID == 0 || claims.Issuer != "roomdesk" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
