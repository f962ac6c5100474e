package auth

import (
	"context"

	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/service"
)

// Service 認證相關操作，*service.AuthService 直接實作
type Service interface {
	Register(ctx context.Context, email, password string, role model.Role) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	Profile(ctx context.Context, userID string) (*model.User, error)
}
