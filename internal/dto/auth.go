package dto

import "time"

// RegisterRequest contains system user registration data
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse contains an issued session token
type TokenResponse struct {
	SessionToken string    `json:"sessionToken"`
	TokenType    string    `json:"tokenType"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
}
