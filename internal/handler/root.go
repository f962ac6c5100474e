// File: internal/handler/root.go
package handler

import (
	"net/http"

	"imf-gadget-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// Version API 版本
const Version = "1.0.0"

// AvailableEndpoints 根路由與 404 回應列出的入口
func AvailableEndpoints() map[string]string {
	return map[string]string{
		"auth":    "/api/auth",
		"gadgets": "/api/gadgets",
		"health":  "/health",
	}
}

// RootHandler 歡迎訊息
// @Summary     Welcome
// @Description 回傳 API 簡介與主要入口
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.WelcomeResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.WelcomeResponse{
			Message:     "🕶️ Welcome to the IMF Gadget API",
			Description: "Your mission, should you choose to accept it, is to manage the most advanced gadgets in the world.",
			Version:     Version,
			Endpoints:   AvailableEndpoints(),
		})
	}
}
