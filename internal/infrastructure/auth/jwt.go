package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

type Claims struct {
	UserID uint               `json:"user_id"`
	Role   authorization.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies the bearer tokens backing API
// sessions.
type JWTService struct {
	secret        []byte
	expiryMinutes int
}

func NewJWTService(secret string, expiryMinutes int) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		expiryMinutes: expiryMinutes,
	}
}

func (s *JWTService) Generate(userID uint, role authorization.Role) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("invalid role in token: %s", claims.Role)
	}
	return claims, nil
}
