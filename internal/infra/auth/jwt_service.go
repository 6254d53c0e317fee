package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	resetSecret []byte // Secret key for signing password reset tokens.
	now         func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Reset == "" {
		return nil, errors.New("reset token secret must be provided")
	}

	return &jwtService{
		resetSecret: []byte(cfg.SecretKey.Reset),
		now:         time.Now,
	}, nil
}

// GenerateResetToken creates an HS256 token carrying the buyer id.
func (s *jwtService) GenerateResetToken(buyerID uint, ttl time.Duration) (string, error) {
	now := s.now()
	claims := service.ResetClaims{
		BuyerID: buyerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(buyerID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.resetSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign reset token")
	}

	return signed, nil
}

// ValidateResetToken checks signature, algorithm and expiry.
func (s *jwtService) ValidateResetToken(tokenString string) (*service.ResetClaims, error) {
	claims := &service.ResetClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.resetSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "invalid reset token")
	}
	if !token.Valid || claims.BuyerID == 0 {
		return nil, errors.New("invalid reset token claims")
	}

	return claims, nil
}
