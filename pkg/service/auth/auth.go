// Package auth extracts caller identity and capabilities from validated
// JWT tokens. Token validation itself happens in the middleware; this
// service only reads claims.
package auth

import (
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finpal/finpal/pkg/domain"
)

// Service reads identity claims from validated tokens.
type Service struct {
	logger *slog.Logger
}

// NewService creates an auth service.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// CurrentUserID returns the user id carried in the token's user_id claim.
func (s *Service) CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: unexpected claims type", domain.ErrUnauthorized)
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: missing user_id claim", domain.ErrUnauthorized)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user_id claim", domain.ErrUnauthorized)
	}
	return id, nil
}

// IsAdmin reports whether the token carries the admin role. The repair
// endpoints inject this capability check; the repair logic itself stays
// authorization-free.
func (s *Service) IsAdmin(token *jwt.Token) bool {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
