package jwtservice

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/limbo/nestling/internal/api"
	errorvalues "github.com/limbo/nestling/internal/error_values"
)

// invalidTokenErrs are jwt failures caused by the token itself rather than by
// the verifier.
var invalidTokenErrs = []error{
	jwt.ErrTokenMalformed,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenExpired,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenRequiredClaimMissing,
}

// JWTService verifies HS256 tokens signed by the auth service with a shared secret.
// Issuing tokens is the auth service's job.
type JWTService struct {
	secret []byte
	parser *jwt.Parser
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	claims := &api.JWTClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		for _, target := range invalidTokenErrs {
			if errors.Is(err, target) {
				return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidToken, err.Error())
			}
		}
		return nil, errors.New("token parsing error: " + err.Error())
	}
	if !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
