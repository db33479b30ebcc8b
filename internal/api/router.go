package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jass-platform/distribution-service/internal/api/handler"
	"github.com/jass-platform/distribution-service/internal/api/middleware"
	"github.com/jass-platform/distribution-service/internal/core/ports"
	"github.com/jass-platform/distribution-service/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs, wired in main.
type Deps struct {
	Mongo         *mongo.Database
	Redis         *redis.Client
	Organizations ports.OrganizationService
	Fares         ports.FareService
	AuthReporter  handlers.AuthReporter
	JWTSecret     string
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("distribution"))

	orgHandler := handler.NewOrganizationHandler(deps.Organizations)
	fareHandler := handler.NewFareHandler(deps.Fares)
	authMiddleware := middleware.Auth(deps.JWTSecret)
	adminGuard := middleware.AdminGuard(deps.Organizations)

	// --- Organization gateway routes ---
	org := e.Group("/api/organizations")
	org.GET("/test", orgHandler.Test)
	org.GET("/users/:userId", orgHandler.GetUser)
	org.GET("/:organizationId/admins", orgHandler.ListAdmins)
	org.GET("/:organizationId/admins/:userId/authorized", orgHandler.IsAuthorizedAdmin)
	org.GET("/:organizationId/admins/:adminId", orgHandler.GetAdmin)
	org.GET("/:organizationId/exists", orgHandler.OrganizationExists)
	org.GET("/:organizationId/users", orgHandler.ListUsers)
	org.GET("/:organizationId/clients", orgHandler.ListClients)

	// --- Fare routes (writes require an authorized organization admin) ---
	org.GET("/:organizationId/fares", fareHandler.List)
	org.GET("/:organizationId/fares/:fareId", fareHandler.Get)
	org.POST("/:organizationId/fares", fareHandler.Create, authMiddleware, adminGuard)
	org.PATCH("/:organizationId/fares/:fareId/status", fareHandler.ChangeStatus, authMiddleware, adminGuard)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis, deps.AuthReporter)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
