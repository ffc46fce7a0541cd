package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/counterapp/counter-api/internal/api/handler"
	"github.com/counterapp/counter-api/internal/api/middleware"
	"github.com/counterapp/counter-api/internal/core/service"
	"github.com/counterapp/counter-api/internal/infrastructure/config"
	mongostore "github.com/counterapp/counter-api/internal/infrastructure/db/mongo"
	healthhandlers "github.com/counterapp/counter-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the readiness probe then skips the Redis check.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env == "development")

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("counterapp"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	counterService := service.NewCounterService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	counterHandler := handler.NewCounterHandler(counterService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Routes (same /api prefix the frontend expects) ---
	api := e.Group("/api")

	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	user := api.Group("/user", authMiddleware)
	user.GET("", userHandler.Get)
	user.PUT("", userHandler.Update)

	counter := api.Group("/counter", authMiddleware)
	counter.GET("", counterHandler.Get)
	counter.POST("/increase", counterHandler.Increase)
	counter.POST("/decrease", counterHandler.Decrease)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
