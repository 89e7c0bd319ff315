// Package auth issues and verifies the signed cookie tokens used by the
// admin gate and the reader session.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token roles
const (
	roleAdmin  = "admin"
	roleReader = "reader"
)

// TokenManager signs and verifies session tokens with a shared secret
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a TokenManager for the given secret
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// IssueAdmin returns a signed admin token valid for ttl
func (m *TokenManager) IssueAdmin(ttl time.Duration) (string, error) {
	return m.sign(jwt.MapClaims{
		"role": roleAdmin,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	})
}

// IssueSession returns a signed reader session token for userID
func (m *TokenManager) IssueSession(userID string, ttl time.Duration) (string, error) {
	return m.sign(jwt.MapClaims{
		"role": roleReader,
		"sub":  userID,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	})
}

// VerifyAdmin checks that token is a valid, unexpired admin token
func (m *TokenManager) VerifyAdmin(token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return err
	}
	if claims["role"] != roleAdmin {
		return fmt.Errorf("token is not an admin token")
	}
	return nil
}

// VerifySession checks a reader session token and returns the user id
func (m *TokenManager) VerifySession(token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	if claims["role"] != roleReader {
		return "", fmt.Errorf("token is not a session token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("session token missing subject")
	}
	return sub, nil
}

func (m *TokenManager) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
