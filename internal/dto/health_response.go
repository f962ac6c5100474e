// File: internal/dto/health_response.go
package dto

// swagger:model dto.HealthResponse
type HealthResponse struct {
	Status      string `json:"status" example:"operational"`
	Message     string `json:"message" example:"IMF Gadget API is running smoothly"`
	Timestamp   string `json:"timestamp" example:"2025-05-01T15:04:05.000Z"`
	Environment string `json:"environment" example:"development"`
}

// swagger:model dto.WelcomeResponse
type WelcomeResponse struct {
	Message     string            `json:"message"`
	Description string            `json:"description"`
	Version     string            `json:"version" example:"1.0.0"`
	Endpoints   map[string]string `json:"endpoints"`
}
