package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated actor identity extracted from a token.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}
