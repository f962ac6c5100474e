package gadgets

import (
	"context"

	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/service"
)

// Service 裝備生命週期操作，*service.GadgetService 直接實作
type Service interface {
	List(ctx context.Context, status string) ([]model.Gadget, error)
	Get(ctx context.Context, id string) (*model.Gadget, error)
	Create(ctx context.Context, name, description string) (*model.Gadget, error)
	Update(ctx context.Context, id string, patch model.GadgetPatch) (*model.Gadget, error)
	Decommission(ctx context.Context, id string) (*model.Gadget, error)
	SelfDestruct(ctx context.Context, id, code string) (*service.SelfDestructResult, error)
}
