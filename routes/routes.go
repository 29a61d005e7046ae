package routes

import (
	"net/http"

	"github.com/Madhav-Gupta-28/bazar-backend-go/handlers"
	"github.com/Madhav-Gupta-28/bazar-backend-go/metrics"
	customMiddleware "github.com/Madhav-Gupta-28/bazar-backend-go/middleware"
	"github.com/labstack/echo/v4"
)

type TokenService interface {
	customMiddleware.SessionVerifier
	handlers.TokenIssuer
}

type AdminStore interface {
	customMiddleware.AdminFinder
	handlers.AdminLookup
}

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Tokens    TokenService
	Admins    AdminStore
	Orders    handlers.OrderStore
	Settings  handlers.SettingReader
	Encryptor handlers.PayloadEncryptor
}

func SetupRoutes(e *echo.Echo, deps Dependencies) {
	authHandler := &handlers.AuthHandler{Admins: deps.Admins, Tokens: deps.Tokens}
	orderHandler := &handlers.OrderHandler{Orders: deps.Orders}
	settingsHandler := &handlers.SettingsHandler{Settings: deps.Settings, Encryptor: deps.Encryptor}

	isAuth := customMiddleware.IsAuth(deps.Tokens)
	isAdmin := customMiddleware.IsAdmin(deps.Admins)

	// Public routes
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", metrics.Handler())
	e.POST("/api/admin/login", authHandler.AdminLogin)

	// Customer routes
	api := e.Group("/api", isAuth)
	api.POST("/orders", orderHandler.CreateOrder)
	api.GET("/orders", orderHandler.ListMyOrders)
	api.GET("/orders/:id", orderHandler.GetOrder)

	// Admin routes
	admin := e.Group("/api/admin", isAuth, isAdmin)
	admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
	admin.GET("/settings", settingsHandler.GetStoreSetting)
}
