package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/limbo/nestling/pkg/entity"
)

type JWTServiceI interface {
	ParseToken(tokenString string) (*JWTClaims, error)
}

// Tokens are issued by the auth service; only the subject is read here.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

type NotifierI interface {
	// Must not block
	Notify(uid uuid.UUID, badges []entity.BadgeID)
}
