// File: internal/handler/gadgets/get.go
package gadgets

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// GetHandler 取得單一裝備
// @Summary     取得裝備
// @Tags        gadgets
// @Produce     json
// @Param       id  path     string true "裝備 ID (uuid)"
// @Success     200 {object} dto.GadgetEnvelope
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/gadgets/{id} [get]
func GetHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		g, err := svc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return api.RespondError(c, err, apperr.ErrGadgetFetch)
		}
		return c.JSON(http.StatusOK, dto.GadgetEnvelope{
			Message: "Gadget retrieved successfully",
			Gadget:  dto.NewGadgetResponse(*g),
		})
	}
}
