// File: internal/handler/gadgets/decommission.go
package gadgets

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// DecommissionHandler 除役裝備（admin），紀錄不會被刪除
// @Summary     除役裝備
// @Description 將狀態改為 Decommissioned 並記錄除役時間
// @Tags        gadgets
// @Produce     json
// @Param       id  path     string true "裝備 ID (uuid)"
// @Success     200 {object} dto.GadgetEnvelope
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/gadgets/{id} [delete]
func DecommissionHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		g, err := svc.Decommission(c.Request().Context(), c.Param("id"))
		if err != nil {
			return api.RespondError(c, err, apperr.ErrGadgetDelete)
		}
		return c.JSON(http.StatusOK, dto.GadgetEnvelope{
			Message: "Gadget decommissioned successfully",
			Gadget:  dto.NewGadgetResponseWithLabel(*g, "Decommissioned"),
		})
	}
}
