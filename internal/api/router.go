package api

import (
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trw5157-hue/garage/internal/api/handler"
	"github.com/trw5157-hue/garage/internal/api/middleware"
	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
	"github.com/trw5157-hue/garage/internal/core/service"
	garagemongo "github.com/trw5157-hue/garage/internal/infrastructure/db/mongo"
	garageredis "github.com/trw5157-hue/garage/internal/infrastructure/db/redis"
	"github.com/trw5157-hue/garage/internal/infrastructure/pdf"
)

// RouterConfig carries everything the router needs beyond its stores.
type RouterConfig struct {
	JWTSecret   string
	CORSOrigins string
	Dispatcher  ports.NotificationDispatcher
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("garage"))

	// --- Dependencies ---
	userRepo := garagemongo.NewUserRepository(db)
	jobRepo := garagemongo.NewJobRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	jobService := service.NewJobService(jobRepo, cfg.Logger)
	invoiceService := service.NewInvoiceService(jobRepo, pdf.NewInvoiceRenderer(), cfg.Logger)
	notifService := service.NewNotificationService(jobRepo, cfg.Dispatcher, garageredis.NewSendDeduper(rdb), cfg.Logger)
	seedService := service.NewSeedService(userRepo, jobRepo, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	notifHandler := handler.NewNotificationHandler(notifService)
	seedHandler := handler.NewSeedHandler(seedService)

	authRequired := middleware.Auth(cfg.JWTSecret, authService)
	managerOnly := middleware.RBAC(domain.RoleManager)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/seed", seedHandler.Seed)

	// --- Authenticated routes ---
	e.GET("/users/me", authHandler.Me, authRequired)
	e.GET("/mechanics", authHandler.Mechanics, authRequired)
	e.GET("/jobs", jobHandler.List, authRequired)
	e.GET("/jobs/:id", jobHandler.Get, authRequired)
	e.PUT("/jobs/:id", jobHandler.Update, authRequired)
	e.POST("/jobs/:id/photos", jobHandler.AddPhoto, authRequired)
	e.GET("/stats", jobHandler.Stats, authRequired)

	// --- Manager-only routes ---
	e.POST("/jobs", jobHandler.Create, authRequired, managerOnly)
	e.DELETE("/jobs/:id", jobHandler.Delete, authRequired, managerOnly)
	e.POST("/jobs/:id/invoice", invoiceHandler.Generate, authRequired, managerOnly)
	e.POST("/notifications/whatsapp", notifHandler.SendWhatsApp, authRequired, managerOnly)
	e.POST("/email/invoice", notifHandler.SendInvoiceEmail, authRequired, managerOnly)
	e.POST("/export/google-sheets", notifHandler.ExportSheets, authRequired, managerOnly)

	// --- Ops (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
