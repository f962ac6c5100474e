// File: internal/dto/gadget_response.go
package dto

import (
	"fmt"
	"time"

	"imf-gadget-api/internal/model"
)

// GadgetResponse 裝備資料加上 probabilityText；自毀確認碼不會輸出
// swagger:model dto.GadgetResponse
type GadgetResponse struct {
	model.Gadget
	ProbabilityText string `json:"probabilityText" example:"The Silent Blue Fox - 87% success probability"`
}

// NewGadgetResponse 以 "<codename> - <p>% success probability" 標註
func NewGadgetResponse(g model.Gadget) GadgetResponse {
	return GadgetResponse{
		Gadget:          g,
		ProbabilityText: fmt.Sprintf("%s - %d%% success probability", g.Codename, g.MissionSuccessProbability),
	}
}

// NewGadgetResponseWithLabel 以 "<codename> - <label>" 標註，用於除役與自毀結果
func NewGadgetResponseWithLabel(g model.Gadget, label string) GadgetResponse {
	return GadgetResponse{
		Gadget:          g,
		ProbabilityText: fmt.Sprintf("%s - %s", g.Codename, label),
	}
}

// swagger:model dto.GadgetListResponse
type GadgetListResponse struct {
	Message string           `json:"message" example:"Gadgets retrieved successfully"`
	Count   int              `json:"count" example:"1"`
	Gadgets []GadgetResponse `json:"gadgets"`
}

// swagger:model dto.GadgetEnvelope
type GadgetEnvelope struct {
	Message string         `json:"message" example:"Gadget retrieved successfully"`
	Gadget  GadgetResponse `json:"gadget"`
}

// swagger:model dto.SelfDestructInitiatedResponse
type SelfDestructInitiatedResponse struct {
	Message          string `json:"message" example:"Self-destruct sequence initiated. Confirmation code generated."`
	ConfirmationCode string `json:"confirmationCode" example:"K7QZ-4M2X"`
	Warning          string `json:"warning"`
	Instructions     string `json:"instructions"`
}

// swagger:model dto.SelfDestructCompletedResponse
type SelfDestructCompletedResponse struct {
	Message   string         `json:"message"`
	Gadget    GadgetResponse `json:"gadget"`
	Timestamp *time.Time     `json:"timestamp"`
}
