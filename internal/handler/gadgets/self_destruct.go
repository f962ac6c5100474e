// File: internal/handler/gadgets/self_destruct.go
package gadgets

import (
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/dto"

	"github.com/labstack/echo/v4"
)

const (
	selfDestructWarning      = "⚠️ This is a simulated confirmation code. In a real system, this would be sent via secure channels."
	selfDestructInstructions = "Use this confirmation code to complete the self-destruct sequence."
)

// SelfDestructHandler 兩階段自毀
// @Summary     自毀裝備
// @Description 不帶 confirmationCode 時產生確認碼（僅 Available、Deployed 可啟動）；帶入確認碼後完成自毀
// @Tags        gadgets
// @Accept      json
// @Produce     json
// @Param       id   path     string                  true  "裝備 ID (uuid)"
// @Param       body body     api.SelfDestructRequest false "確認碼"
// @Success     200  {object} dto.SelfDestructInitiatedResponse
// @Success     200  {object} dto.SelfDestructCompletedResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /api/gadgets/{id}/self-destruct [post]
func SelfDestructHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SelfDestructRequest
		if err := c.Bind(&req); err != nil {
			return api.RespondError(c, apperr.ErrInvalidRequestBody.Wrap(err), nil)
		}

		res, err := svc.SelfDestruct(c.Request().Context(), c.Param("id"), req.ConfirmationCode)
		if err != nil {
			return api.RespondError(c, err, apperr.ErrSelfDestruct)
		}

		if !res.Destroyed {
			return c.JSON(http.StatusOK, dto.SelfDestructInitiatedResponse{
				Message:          "Self-destruct sequence initiated. Confirmation code generated.",
				ConfirmationCode: res.ConfirmationCode,
				Warning:          selfDestructWarning,
				Instructions:     selfDestructInstructions,
			})
		}
		return c.JSON(http.StatusOK, dto.SelfDestructCompletedResponse{
			Message:   "💥 Self-destruct sequence completed successfully",
			Gadget:    dto.NewGadgetResponseWithLabel(*res.Gadget, "DESTROYED"),
			Timestamp: res.Gadget.SelfDestructAt,
		})
	}
}
