package model

import "github.com/golang-jwt/jwt/v5"

// Identity is the authenticated user as asserted by a verified token.
type Identity struct {
	ID int `json:"id"`
}

type AppClaims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}
