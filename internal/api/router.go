package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redisclient "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/sitewise/mis-backend/internal/api/handler"
	"github.com/sitewise/mis-backend/internal/api/middleware"
	"github.com/sitewise/mis-backend/internal/config"
	"github.com/sitewise/mis-backend/internal/core/domain"
	"github.com/sitewise/mis-backend/internal/core/service"
	mongodb "github.com/sitewise/mis-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/sitewise/mis-backend/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongodriver.Database, rdb *redisclient.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mis"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	inventoryRepo := mongodb.NewInventoryRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	profileCache := redisdb.NewProfileCache(rdb, userRepo, cfg.Redis.CacheTTL, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, profileCache, log)
	inventoryService := service.NewInventoryService(inventoryRepo, log)
	activityService := service.NewActivityService(activityRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	activityHandler := handler.NewActivityHandler(activityService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	protect := middleware.Protect(cfg.JWTSecret, profileCache)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	anyRole := middleware.RequireRoles(domain.RoleAdmin, domain.RoleUserType1, domain.RoleUserType2)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, protect)

	// --- User management (admin only) ---
	users := e.Group("/users", protect, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Inventory: reads for every role, writes admin only ---
	inventory := e.Group("/inventory", protect)
	inventory.GET("", inventoryHandler.List, anyRole)
	inventory.GET("/:id", inventoryHandler.Get, anyRole)
	inventory.POST("", inventoryHandler.Create, adminOnly)
	inventory.PUT("/:id", inventoryHandler.Update, adminOnly)
	inventory.DELETE("/:id", inventoryHandler.Delete, adminOnly)

	// --- Project activities: any authenticated user, ownership in service ---
	activities := e.Group("/activities", protect)
	activities.GET("", activityHandler.List)
	activities.POST("", activityHandler.Create)
	activities.GET("/:id", activityHandler.Get)
	activities.PUT("/:id", activityHandler.Update)
	activities.DELETE("/:id", activityHandler.Delete)

	// --- Operational surface ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
