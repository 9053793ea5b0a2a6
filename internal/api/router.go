package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/task-api/internal/api/handler"
	"github.com/taskhub/task-api/internal/api/middleware"
	"github.com/taskhub/task-api/internal/core/service"
	"github.com/taskhub/task-api/internal/infrastructure/config"
	mongodb "github.com/taskhub/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhub/task-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	sessions := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, cfg.JWTTTL, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, sessions, log)

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)

	// --- Guarded routes (bearer token required) ---
	guarded := apiGroup.Group("", authMiddleware)
	guarded.GET("/me", authHandler.Me)
	guarded.POST("/logout", authHandler.Logout)
	guarded.GET("/tasks", taskHandler.Index)
	guarded.POST("/tasks", taskHandler.Store)
	guarded.PUT("/tasks/:id", taskHandler.Update)
	guarded.DELETE("/tasks/:id", taskHandler.Destroy)

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
