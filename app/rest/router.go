package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"backoffice-service/app/port"
	"backoffice-service/app/rest/handlers"
	custommw "backoffice-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AuthUsecase    port.AuthUsecase
	InquiryUsecase port.InquiryUsecase
	AuditRepo      port.AuditRepository
	SessionRepo    port.SessionRepository
	DB             handlers.HealthChecker
	DevMode        bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.DevMode

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger, config.DevMode)
	inquiryHandler := handlers.NewInquiryHandler(config.InquiryUsecase, config.Logger, config.DevMode)
	adminHandler := handlers.NewAdminHandler(config.InquiryUsecase, config.Logger, config.DevMode)
	securityHandler := handlers.NewSecurityHandler(config.AuditRepo, config.SessionRepo, config.Logger, config.DevMode)
	healthHandler := handlers.NewHealthHandler(config.DB, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				config.Logger.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				config.Logger.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints. Logout is not gated: a request without a
	// bearer token is a 400, not a 401, so the handler checks the header
	// itself before verifying.
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/validate", authHandler.Validate, authMiddleware.RequireAuth())

	// Public lead-generation forms
	v1.POST("/contact", inquiryHandler.SubmitContact)
	v1.POST("/project-requests", inquiryHandler.SubmitProjectRequest)

	// Admin back-office endpoints
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())

	admin.GET("/project-requests", adminHandler.ListProjectRequests)
	admin.GET("/project-requests/:id", adminHandler.GetProjectRequest)
	admin.PATCH("/project-requests/:id", adminHandler.UpdateProjectRequest)
	admin.DELETE("/project-requests/:id", adminHandler.DeleteProjectRequest)

	admin.GET("/contacts", adminHandler.ListContacts)
	admin.GET("/contacts/:id", adminHandler.GetContact)
	admin.PATCH("/contacts/:id", adminHandler.UpdateContact)

	admin.GET("/audit", securityHandler.ListAudit)
	admin.GET("/security/summary", securityHandler.Summary)

	admin.POST("/admins", authHandler.CreateAdmin)

	return e
}
