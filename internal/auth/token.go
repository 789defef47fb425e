// Package auth issues and validates the bearer tokens staff use against the API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stylewriter/internal/config"
	"stylewriter/internal/domain"
)

const audience = "stylewriter-api"

// Claims represents the JWT claims of a staff token.
type Claims struct {
	jwt.RegisteredClaims
	Name string          `json:"name"`
	Role domain.UserRole `json:"role"`
}

// Token is a signed access token.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	cfg config.JWTConfig
	now func() time.Time
}

// NewTokenManager creates a TokenManager from the JWT settings.
func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{cfg: cfg, now: time.Now}
}

// Issue signs a token for subject with the given display name and role.
func (m *TokenManager) Issue(subject, name string, role domain.UserRole, ttl time.Duration) (*Token, error) {
	if subject == "" {
		return nil, errors.New("auth.Issue: subject is required")
	}
	if ttl <= 0 {
		ttl = m.cfg.AccessTokenExpiry
	}
	now := m.now()
	expiry := now.Add(ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{audience},
		},
		Name: name,
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}
	return &Token{AccessToken: signed, ExpiresAt: expiry}, nil
}

// Validate parses a token and checks its signature, expiry, issuer and audience.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	},
		jwt.WithAudience(audience),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
