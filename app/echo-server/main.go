package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kiranaMarket/app/echo-server/router"
	"kiranaMarket/business/category"
	"kiranaMarket/business/orders"
	"kiranaMarket/business/product"
	"kiranaMarket/business/recommend"
	userService "kiranaMarket/business/user"
	"kiranaMarket/internal/middleware"
	"kiranaMarket/internal/repository/notification"
	psqlRepo "kiranaMarket/internal/repository/postgres"
	redisRepo "kiranaMarket/internal/repository/redis"
	"kiranaMarket/internal/rest"
	"kiranaMarket/pkg/config"
	"kiranaMarket/pkg/database"
	redisdb "kiranaMarket/pkg/database/redis"
	"kiranaMarket/pkg/logger"
	"kiranaMarket/pkg/metrics"
	"kiranaMarket/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting KiranaMarket", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close redis client", err)
		}
	}()

	logger.Info("Redis connected successfully")

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	recoConfigRepo := psqlRepo.NewRecoConfigRepository(db)
	recoEventRepo := psqlRepo.NewRecommendationEventRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	var recoCache recommend.ResultCache
	if cfg.Reco.CacheEnabled {
		recoCache = redisRepo.NewRecommendationCache(redisClient, cfg.Reco.CacheTTL)
	}

	// Init service
	usrService := userService.NewUserService(userRepo, validate, mailjetEmail, tokenRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	ordersService := orders.NewOrdersService(ordersRepo, productsRepo)
	productService := product.NewProductService(productsRepo)
	categoryService := category.NewCategoryService(categoryRepo)
	recoService := recommend.NewRecommendService(productsRepo, ordersRepo, recoEventRepo, recoConfigRepo, recoCache)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	productHandler := rest.NewProductHandler(productService)
	categoryHandler := rest.NewCategoryHandler(categoryService)
	recoHandler := rest.NewRecommendationHandler(recoService)
	recoAdminHandler := rest.NewRecoAdminHandler(recoConfigRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(tokenRepo)
	adminOnly := middleware.AdminOnly()
	selfOrAdmin := middleware.SelfOrAdmin()

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly, selfOrAdmin)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetOrdersRoutes(api, ordersHandler, authRequired, adminOnly)
	router.SetupCategoryRoutes(api, categoryHandler, authRequired, adminOnly)
	router.SetRecommendationRoutes(api, recoHandler, authRequired, adminOnly)
	router.SetRecoAdminRoutes(api, recoAdminHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
