// File: internal/api/respond.go
package api

import (
	"errors"
	"net/http"

	"imf-gadget-api/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorBody 組出 {error, code, ...details}
func ErrorBody(e *apperr.Error) map[string]any {
	body := make(map[string]any, len(e.Details)+2)
	for k, v := range e.Details {
		body[k] = v
	}
	body["error"] = e.Message
	body["code"] = e.Code
	return body
}

// RespondError 寫出錯誤回應；非業務錯誤以 fallback（nil 時為 INTERNAL_ERROR）回應，
// 5xx 會透過 Echo logger 記錄原始錯誤
func RespondError(c echo.Context, err error, fallback *apperr.Error) error {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		if fallback == nil {
			fallback = apperr.ErrInternal
		}
		appErr = fallback.Wrap(err)
	}
	if appErr.Status >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, appErr)
	}
	return c.JSON(appErr.Status, ErrorBody(appErr))
}

// FailedTags 回傳驗證失敗的 tag 集合；err 不是 validator 錯誤時回傳 nil
func FailedTags(err error) map[string]bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	tags := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		tags[fe.Tag()] = true
	}
	return tags
}
