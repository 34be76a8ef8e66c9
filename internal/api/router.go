package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inuaai/onboarding-portal/internal/api/handler"
	"github.com/inuaai/onboarding-portal/internal/api/middleware"
	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/service"
	mongodb "github.com/inuaai/onboarding-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/inuaai/onboarding-portal/internal/infrastructure/db/redis"
	"github.com/inuaai/onboarding-portal/internal/pkg/config"
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
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	attemptRepo := mongodb.NewLoginAttemptRepository(db)
	announcementRepo := mongodb.NewAnnouncementRepository(db)
	maintenanceRepo := mongodb.NewMaintenanceRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.TokenTTL)
	draftStore := redisdb.NewDraftStore(rdb)

	authService := service.NewAuthService(userRepo, attemptRepo, sessionStore, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost, log)
	onboardingService := service.NewOnboardingService(draftStore, log)
	announcementService := service.NewAnnouncementService(announcementRepo, log)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, log)
	adminService := service.NewAdminService(userRepo, attemptRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	adminHandler := handler.NewAdminHandler(adminService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	requireAuth := middleware.Auth(cfg.JWTSecret, sessionStore)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret, sessionStore)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)
	e.GET("/auth/session", authHandler.Session, requireAuth)

	// --- Onboarding drafts (pre-account, no auth) ---
	e.POST("/onboarding", onboardingHandler.Start)
	e.GET("/onboarding/:id", onboardingHandler.Progress)
	e.POST("/onboarding/:id/policies/:policyId", onboardingHandler.AgreePolicy)
	e.POST("/onboarding/:id/tools/:toolId", onboardingHandler.CompleteTool)

	// --- Announcements ---
	e.GET("/announcements", announcementHandler.List, optionalAuth)
	e.GET("/announcements/:id", announcementHandler.Get, optionalAuth)
	e.POST("/announcements", announcementHandler.Create, requireAuth, adminOnly)
	e.PUT("/announcements/:id", announcementHandler.Update, requireAuth, adminOnly)
	e.DELETE("/announcements/:id", announcementHandler.Delete, requireAuth, adminOnly)

	// --- Maintenance calendar ---
	e.GET("/maintenance", maintenanceHandler.List, optionalAuth)
	e.GET("/maintenance/:id", maintenanceHandler.Get, optionalAuth)
	e.POST("/maintenance", maintenanceHandler.Create, requireAuth, adminOnly)
	e.PUT("/maintenance/:id", maintenanceHandler.Update, requireAuth, adminOnly)
	e.DELETE("/maintenance/:id", maintenanceHandler.Delete, requireAuth, adminOnly)

	// --- Admin surfaces ---
	admin := e.Group("/admin", requireAuth, adminOnly)
	admin.GET("/users", adminHandler.ListEmployees)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/login-attempts", adminHandler.ListLoginAttempts)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
