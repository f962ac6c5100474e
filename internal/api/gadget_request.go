package api

// swagger:model api.CreateGadgetRequest
type CreateGadgetRequest struct {
	Name        string `json:"name" validate:"required" example:"Exploding Chewing Gum"`
	Description string `json:"description,omitempty" example:"Mint flavoured, handle with care."`
}

// UpdateGadgetRequest 部分更新，未提供或空字串的欄位維持原值
// swagger:model api.UpdateGadgetRequest
type UpdateGadgetRequest struct {
	Name        *string `json:"name,omitempty" example:"Laser Watch"`
	Description *string `json:"description,omitempty" example:"Cuts through steel."`
	Status      *string `json:"status,omitempty" example:"Deployed" enums:"Available,Deployed,Destroyed,Decommissioned"`
}

// swagger:model api.SelfDestructRequest
type SelfDestructRequest struct {
	ConfirmationCode string `json:"confirmationCode,omitempty" example:"K7QZ-4M2X"`
}
