// File: internal/handler/gadgets/update.go
package gadgets

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"
	"imf-gadget-api/internal/model"

	"github.com/labstack/echo/v4"
)

// UpdateHandler 部分更新裝備（admin）
// @Summary     更新裝備
// @Description 只更新有提供且非空的欄位；status 必須是四種狀態之一
// @Tags        gadgets
// @Accept      json
// @Produce     json
// @Param       id   path     string                  true "裝備 ID (uuid)"
// @Param       body body     api.UpdateGadgetRequest true "更新欄位"
// @Success     200  {object} dto.GadgetEnvelope
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/gadgets/{id} [patch]
func UpdateHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateGadgetRequest
		if err := c.Bind(&req); err != nil {
			return api.RespondError(c, apperr.ErrInvalidRequestBody.Wrap(err), nil)
		}

		patch := model.GadgetPatch{Name: req.Name, Description: req.Description}
		if req.Status != nil {
			s := model.GadgetStatus(*req.Status)
			patch.Status = &s
		}

		g, err := svc.Update(c.Request().Context(), c.Param("id"), patch)
		if err != nil {
			return api.RespondError(c, err, apperr.ErrGadgetUpdate)
		}
		return c.JSON(http.StatusOK, dto.GadgetEnvelope{
			Message: "Gadget updated successfully",
			Gadget:  dto.NewGadgetResponse(*g),
		})
	}
}
