// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/cache"
	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/dto"

	"github.com/labstack/echo/v4"
)

const (
	healthProbeKey = "health:probe"
	healthProbeTTL = 10 * time.Second
	// ISO-8601 含毫秒
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var timeNow = time.Now

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與 Redis 連線，回傳服務狀態與執行環境
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Failure     503 {object} dto.HTTPError
// @Router      /health [get]
func HealthHandler(db database.DB, cch cache.Cache, environment string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return respond(c, apperr.ErrDatabaseUnhealthy.Wrap(err))
		}

		stamp := timeNow().UTC().Format(timestampLayout)
		if err := cache.Probe(ctx, cch, healthProbeKey, stamp, healthProbeTTL); err != nil {
			return respond(c, apperr.ErrCacheUnhealthy.Wrap(err))
		}

		return c.JSON(http.StatusOK, dto.HealthResponse{
			Status:      "operational",
			Message:     "IMF Gadget API is running smoothly",
			Timestamp:   stamp,
			Environment: environment,
		})
	}
}
