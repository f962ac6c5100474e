// File: internal/handler/gadgets/create.go
package gadgets

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// CreateHandler 建立裝備（admin）
// @Summary     建立裝備
// @Description 產生唯一代號與任務成功率；未提供描述時自動產生
// @Tags        gadgets
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateGadgetRequest true "裝備資料"
// @Success     201  {object} dto.GadgetEnvelope
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/gadgets [post]
func CreateHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateGadgetRequest
		if err := c.Bind(&req); err != nil {
			return api.RespondError(c, apperr.ErrInvalidRequestBody.Wrap(err), nil)
		}
		if err := c.Validate(&req); err != nil {
			if api.FailedTags(err)["required"] {
				return api.RespondError(c, apperr.ErrMissingName, nil)
			}
			return api.RespondError(c, err, apperr.ErrGadgetCreate)
		}

		g, err := svc.Create(c.Request().Context(), req.Name, req.Description)
		if err != nil {
			return api.RespondError(c, err, apperr.ErrGadgetCreate)
		}
		return c.JSON(http.StatusCreated, dto.GadgetEnvelope{
			Message: "Gadget created successfully",
			Gadget:  dto.NewGadgetResponse(*g),
		})
	}
}
