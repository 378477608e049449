package dto

import "github.com/golang-jwt/jwt/v5"

// SessionClaims grants its bearer access to one quiz session.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
