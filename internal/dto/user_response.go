// File: internal/dto/user_response.go
package dto

import (
	"time"

	"imf-gadget-api/internal/model"
)

// swagger:model dto.UserResponse
type UserResponse struct {
	ID        string     `json:"id" example:"0b6f2c44-4c1e-4f7d-8d7b-54a1f0f5f0a1"`
	Email     string     `json:"email" example:"agent@imf.gov"`
	Role      model.Role `json:"role" example:"agent"`
	CreatedAt time.Time  `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time  `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
