// File: internal/handler/gadgets/list.go
package gadgets

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// ListHandler 列出裝備
// @Summary     列出裝備
// @Description 依建立時間新到舊列出所有裝備，可用 status 過濾；每筆附帶 probabilityText
// @Tags        gadgets
// @Produce     json
// @Param       status query    string false "狀態過濾" Enums(Available, Deployed, Destroyed, Decommissioned)
// @Success     200    {object} dto.GadgetListResponse
// @Failure     401    {object} dto.HTTPError
// @Failure     500    {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/gadgets [get]
func ListHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		gadgets, err := svc.List(c.Request().Context(), c.QueryParam("status"))
		if err != nil {
			return api.RespondError(c, err, apperr.ErrGadgetsFetch)
		}

		items := make([]dto.GadgetResponse, 0, len(gadgets))
		for _, g := range gadgets {
			items = append(items, dto.NewGadgetResponse(g))
		}
		return c.JSON(http.StatusOK, dto.GadgetListResponse{
			Message: "Gadgets retrieved successfully",
			Count:   len(items),
			Gadgets: items,
		})
	}
}
