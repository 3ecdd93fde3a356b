package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/api/handler"
	"github.com/lendsqr/admin-dashboard/internal/api/middleware"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(auth ports.AuthService, users ports.UserService, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	authHandler := handler.NewAuthHandler(auth)
	userHandler := handler.NewUserHandler(users)
	authMiddleware := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC("admin")

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/me", authHandler.Me, authMiddleware)
	e.POST("/auth/refresh", authHandler.Refresh, authMiddleware)

	// --- User administration (authenticated operators only) ---
	g := e.Group("/users", authMiddleware, adminOnly)
	g.GET("", userHandler.List)
	g.GET("/stats", userHandler.Stats)
	g.GET("/:id", userHandler.Get)
	g.PATCH("/:id/status", userHandler.UpdateStatus)
	g.PATCH("/:id/blacklist", userHandler.Blacklist)
	g.PATCH("/:id/activate", userHandler.Activate)
	g.GET("/:id/events", userHandler.Events)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
