package main

import (
	"log"
	"net/http"

	_ "casamx/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"casamx/internal/auth"
	"casamx/internal/ban"
	"casamx/internal/cache"
	"casamx/internal/config"
	"casamx/internal/db"
	"casamx/internal/handler"
	"casamx/internal/model"
	"casamx/internal/repository"
	"casamx/internal/router"
	"casamx/internal/service"
)

// @title Casametrix API
// @version 1.0
// @description Real-estate data platform API: authentication, address search over the Base Adresse Nationale, credit billing and property reports.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.SearchUsage{},
		&model.BillingPlan{},
		&model.Subscription{},
		&model.CreditEntry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	addressRepo := repository.NewAddressRepository(gormDB)
	usageRepo := repository.NewUsageRepository(gormDB)
	billingRepo := repository.NewBillingRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize services
	banClient := ban.NewClient(cfg.BANBaseURL, cfg.BANTimeout)
	authService := service.NewAuthService(userRepo, hasher, codec)
	quotaService := service.NewQuotaService(usageRepo, cfg.AnonDailyQuota)
	addressService := service.NewAddressService(addressRepo, banClient, cacheClient)
	billingService := service.NewBillingService(billingRepo, userRepo, cacheClient)
	propertyService := service.NewPropertyService(addressService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.JWTTTL, cfg.IsProd())
	addressHandler := handler.NewAddressHandler(addressService, quotaService, codec)
	billingHandler := handler.NewBillingHandler(billingService)
	propertyHandler := handler.NewPropertyHandler(propertyService)

	// Register routes
	router.Register(
		e,
		cfg,
		codec,
		authHandler,
		addressHandler,
		billingHandler,
		propertyHandler,
	)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
	}
	log.Printf("swagger UI at %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
