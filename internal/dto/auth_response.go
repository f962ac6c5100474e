// File: internal/dto/auth_response.go
package dto

import "time"

// AuthResponse 註冊與登入共用
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Message   string       `json:"message" example:"Login successful"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	ExpiresIn string       `json:"expiresIn" example:"24h"`
	ExpiresAt time.Time    `json:"expiresAt" example:"2025-05-02T15:04:05Z"`
}

// swagger:model dto.ProfileResponse
type ProfileResponse struct {
	Message string       `json:"message" example:"Profile retrieved successfully"`
	User    UserResponse `json:"user"`
}
