// File: internal/handler/error_handler.go
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"imf-gadget-api/internal/api"
	"imf-gadget-api/internal/apperr"

	"github.com/labstack/echo/v4"
)

// respond 健康檢查的錯誤不屬於任何操作，直接寫出
func respond(c echo.Context, err error) error {
	return api.RespondError(c, err, nil)
}

// ErrorHandler 取代 Echo 預設的 HTTPErrorHandler，讓框架錯誤（404、405、panic）
// 也輸出 {error, code} 格式
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		err = fromHTTPError(c, he)
	}
	if rerr := api.RespondError(c, err, nil); rerr != nil {
		c.Logger().Error(rerr)
	}
}

func fromHTTPError(c echo.Context, he *echo.HTTPError) error {
	req := c.Request()
	switch he.Code {
	case http.StatusNotFound:
		return apperr.ErrNotFound.
			With("message", fmt.Sprintf("The requested endpoint %s %s does not exist", req.Method, req.URL.RequestURI())).
			With("availableEndpoints", AvailableEndpoints())
	case http.StatusMethodNotAllowed:
		return apperr.ErrMethodNotAllowed
	case http.StatusBadRequest:
		return apperr.ErrInvalidRequestBody.Wrap(he)
	}
	if he.Code >= http.StatusInternalServerError {
		return apperr.ErrInternal.Wrap(he)
	}
	return apperr.New(he.Code, "REQUEST_ERROR", http.StatusText(he.Code)).Wrap(he)
}
