package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tosinajy/carrier-code-verify/internal/shared/authorization"
	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
)

// Claims ties a signed cookie to one row of the sessions table.
type Claims struct {
	UserID    uint                   `json:"user_id"`
	SessionID string                 `json:"session_id"`
	Role      authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret     []byte
	expMinutes int
}

func NewJWTService(secret string, expMinutes int) *JWTService {
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &JWTService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
	}
}

// Generate signs a token for the session and returns it with its expiry.
func (s *JWTService) Generate(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error) {
	now := biztime.NowUTC()
	exp := now.Add(s.TTL())

	claims := &Claims{
		UserID:    userID,
		SessionID: sessionID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, exp, nil
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

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *JWTService) TTL() time.Duration {
	return time.Duration(s.expMinutes) * time.Minute
}
