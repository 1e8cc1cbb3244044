package authctx

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	PurposeAccess = "access"
	PurposeReset  = "reset"
)

type MyClaims struct {
	UID     string `json:"uid,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token for uid.
func Sign(secret, uid, purpose string, ttl time.Duration, now time.Time) (string, error) {
	claims := MyClaims{
		UID:     uid,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse validates the token and returns its uid. Tokens minted for another
// purpose are rejected, so a reset link cannot be used as a bearer token.
func Parse(secret, tokenStr, purpose string) (string, error) {
	var claims MyClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}
	if claims.Purpose != purpose && !(claims.Purpose == "" && purpose == PurposeAccess) {
		return "", fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	if uid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "missing uid")
	}
	return uid, nil
}
