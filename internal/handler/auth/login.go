// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /api/auth/login [post]
func LoginHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return api.RespondError(c, apperr.ErrInvalidRequestBody.Wrap(err), nil)
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			if api.FailedTags(err)["required"] {
				return api.RespondError(c, apperr.ErrMissingCredentials, nil)
			}
			return api.RespondError(c, err, apperr.ErrLogin)
		}

		res, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return api.RespondError(c, err, apperr.ErrLogin)
		}

		return c.JSON(http.StatusOK, dto.AuthResponse{
			Message:   "Login successful",
			User:      dto.NewUserResponse(res.User),
			Token:     res.Token,
			ExpiresIn: res.ExpiresIn,
			ExpiresAt: res.ExpiresAt,
		})
	}
}
