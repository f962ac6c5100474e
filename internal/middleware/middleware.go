package middleware

import (
	"context"
	"strings"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// Authenticator 驗證 bearer token，*service.AuthService 直接實作
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Identity, error)
}

// bearerToken 解析 "Authorization: Bearer <token>"；缺少 token 回傳空字串
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return "", nil
	}
	if !strings.EqualFold(parts[0], "bearer") {
		return "", apperr.ErrInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth 驗證 token 並把身分放進 context
func RequireAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return api.RespondError(c, err, apperr.ErrTokenVerification)
			}
			identity, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return api.RespondError(c, err, apperr.ErrTokenVerification)
			}
			c.Set(ContextUserKey, identity)
			return next(c)
		}
	}
}

// RequireRole 必須放在 RequireAuth 之後
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := service.Authorize(CurrentIdentity(c), roles...); err != nil {
				return api.RespondError(c, err, nil)
			}
			return next(c)
		}
	}
}

// CurrentIdentity 取得 RequireAuth 設定的身分，未驗證時回傳 nil
func CurrentIdentity(c echo.Context) *service.Identity {
	identity, _ := c.Get(ContextUserKey).(*service.Identity)
	return identity
}
