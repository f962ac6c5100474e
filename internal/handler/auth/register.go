// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"
	"imf-gadget-api/internal/model"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新的 agent
// @Summary     註冊使用者
// @Description 建立新帳號並回傳存取令牌；請求中的 role 會被忽略，新帳號一律為 agent
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /api/auth/register [post]
func RegisterHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return api.RespondError(c, apperr.ErrInvalidRequestBody.Wrap(err), nil)
		}
		if err := c.Validate(&req); err != nil {
			tags := api.FailedTags(err)
			switch {
			case tags["required"]:
				return api.RespondError(c, apperr.ErrMissingCredentials, nil)
			case tags["min"]:
				return api.RespondError(c, apperr.ErrWeakPassword, nil)
			default:
				return api.RespondError(c, err, apperr.ErrRegistration)
			}
		}

		res, err := svc.Register(c.Request().Context(), req.Email, req.Password, model.Role(req.Role))
		if err != nil {
			return api.RespondError(c, err, apperr.ErrRegistration)
		}

		return c.JSON(http.StatusCreated, dto.AuthResponse{
			Message:   "Agent registered successfully",
			User:      dto.NewUserResponse(res.User),
			Token:     res.Token,
			ExpiresIn: res.ExpiresIn,
			ExpiresAt: res.ExpiresAt,
		})
	}
}
