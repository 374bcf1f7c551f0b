package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"alumninexus/internal/domain"
)

type roleClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type jwtRoleToken struct {
	secret []byte
}

// NewJWTRoleToken returns a role-token issuer/verifier signing HS256 JWTs
// with the given secret. The token carries only the self-asserted portal
// role; there is no user identity behind it.
func NewJWTRoleToken(secret string) *jwtRoleToken {
	return &jwtRoleToken{secret: []byte(secret)}
}

var (
	_ domain.RoleTokenIssuer   = (*jwtRoleToken)(nil)
	_ domain.RoleTokenVerifier = (*jwtRoleToken)(nil)
)

func (j *jwtRoleToken) Issue(role string, expiry time.Duration) (string, error) {
	if !domain.ValidRole(role) {
		return "", fmt.Errorf("unknown role %q", role)
	}
	now := time.Now()
	claims := roleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   role,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *jwtRoleToken) Verify(tokenString string) (string, error) {
	claims := &roleClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if !domain.ValidRole(claims.Role) {
		return "", fmt.Errorf("token carries unknown role %q", claims.Role)
	}
	return claims.Role, nil
}
