// File: internal/handler/auth/profile.go
package auth

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"
	"imf-gadget-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ProfileHandler 取得當前使用者資料
// @Summary     取得個人資料
// @Description 依據存取令牌取得當前使用者的 id、email、角色與時間戳
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.ProfileResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/auth/profile [get]
func ProfileHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := middleware.CurrentIdentity(c)
		if identity == nil {
			return api.RespondError(c, apperr.ErrAuthenticationRequired, nil)
		}

		user, err := svc.Profile(c.Request().Context(), identity.ID)
		if err != nil {
			return api.RespondError(c, err, apperr.ErrProfile)
		}

		return c.JSON(http.StatusOK, dto.ProfileResponse{
			Message: "Profile retrieved successfully",
			User:    dto.NewUserResponse(user),
		})
	}
}
