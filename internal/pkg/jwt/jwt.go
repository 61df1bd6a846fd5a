package jwt

import (
	"errors"
	"time"

	"roombook/internal/domain/principal"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the contract with the external identity provider: tokens carry
// the principal id in the subject plus display name and role.
type Claims struct {
	DisplayName string `json:"name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
}

func NewService(secretKey string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
	}
}

// GenerateToken exists for test support and local development; production
// tokens come from the identity provider.
func (s *Service) GenerateToken(p principal.Principal, duration time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		DisplayName: p.DisplayName,
		Role:        p.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (principal.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return principal.Principal{}, ErrExpiredToken
		}
		return principal.Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return principal.Principal{}, ErrInvalidToken
	}

	role, err := principal.NewRole(claims.Role)
	if err != nil {
		return principal.Principal{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return principal.Principal{}, ErrInvalidToken
	}

	return principal.Principal{
		ID:          claims.Subject,
		DisplayName: claims.DisplayName,
		Role:        role,
	}, nil
}
