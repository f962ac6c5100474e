package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required" example:"ethan.hunt@imf.gov"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`
	// Role 會被忽略，新帳號一律為 agent
	Role string `json:"role,omitempty" example:"agent"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"agent@imf.gov"`
	Password string `json:"password" validate:"required" example:"agent123"`
}
