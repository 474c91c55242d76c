package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in our session tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
