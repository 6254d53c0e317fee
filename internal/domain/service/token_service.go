package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetClaims are the claims carried by a password reset token.
type ResetClaims struct {
	BuyerID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed tokens used for password recovery.
type TokenService interface {
	// GenerateResetToken signs a token for buyerID that expires after ttl.
	GenerateResetToken(buyerID uint, ttl time.Duration) (string, error)

	// ValidateResetToken verifies signature and expiry and returns the claims.
	ValidateResetToken(token string) (*ResetClaims, error)
}
