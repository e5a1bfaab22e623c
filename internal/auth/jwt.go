package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies an authenticated interviewer session. There are no per
// user accounts; the dashboard has a single interviewer role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const RoleInterviewer = "interviewer"

func GenerateToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: RoleInterviewer,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Role == RoleInterviewer {
		return claims, nil
	}
	return nil, jwt.ErrTokenUnverifiable
}
