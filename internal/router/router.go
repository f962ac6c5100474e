// File: internal/router/router.go
package router

import (
	"imf-gadget-api/internal/cache"
	"imf-gadget-api/internal/codename"
	"imf-gadget-api/internal/config"
	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/handler"
	"imf-gadget-api/internal/handler/auth"
	"imf-gadget-api/internal/handler/gadgets"
	"imf-gadget-api/internal/middleware"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/service"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, cfg *config.Config) {
	authSvc := service.NewAuthService(db, service.TokenConfig{
		Secret:    cfg.JWTSecret,
		TTL:       cfg.TokenTTL(),
		ExpiresIn: cfg.JWTExpiresIn,
	})
	gadgetSvc := service.NewGadgetService(db, codename.New(nil))
	requireAuth := middleware.RequireAuth(authSvc)

	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db, cch, cfg.AppEnv))

	api := e.Group("/api")

	// 註冊、登入、個人資料
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(authSvc))
	apiAuth.POST("/login", auth.LoginHandler(authSvc))
	apiAuth.GET("/profile", auth.ProfileHandler(authSvc), requireAuth)

	// 裝備：讀取需登入，異動限 admin
	apiGadgets := api.Group("/gadgets", requireAuth)
	apiGadgets.GET("", gadgets.ListHandler(gadgetSvc))
	apiGadgets.GET("/:id", gadgets.GetHandler(gadgetSvc))
	apiGadgets.POST("", gadgets.CreateHandler(gadgetSvc), middleware.RequireRole(model.RoleAdmin))
	apiGadgets.PATCH("/:id", gadgets.UpdateHandler(gadgetSvc), middleware.RequireRole(model.RoleAdmin))
	apiGadgets.DELETE("/:id", gadgets.DecommissionHandler(gadgetSvc), middleware.RequireRole(model.RoleAdmin))
	apiGadgets.POST("/:id/self-destruct", gadgets.SelfDestructHandler(gadgetSvc),
		middleware.RequireRole(model.RoleAdmin, model.RoleAgent))
}
