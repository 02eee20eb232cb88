package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/diulabs/admission-api/api/swagger"
	"github.com/diulabs/admission-api/internal/handler"
	"github.com/diulabs/admission-api/internal/middleware"
	"github.com/diulabs/admission-api/internal/repository"
	"github.com/diulabs/admission-api/internal/service"
	"github.com/diulabs/admission-api/pkg/cache"
	"github.com/diulabs/admission-api/pkg/config"
	"github.com/diulabs/admission-api/pkg/database"
	"github.com/diulabs/admission-api/pkg/logger"
	corsmiddleware "github.com/diulabs/admission-api/pkg/middleware/cors"
	reqidmiddleware "github.com/diulabs/admission-api/pkg/middleware/requestid"
)

// @title DIU Admission API
// @version 1.0.0
// @description Admission portal backend: catalog, waivers, recommendations, FAQ chat
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Catalog.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, catalog caching disabled", "error", err)
			redisClient = nil
		}
	}

	programRepo := repository.NewProgramRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	waiverRepo := repository.NewWaiverRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, cfg.Catalog.CacheEnabled && redisClient != nil)
	catalogSvc := service.NewCatalogService(programRepo, departmentRepo, cacheSvc, logr)
	waiverSvc := service.NewWaiverService(waiverRepo, programRepo, nil, logr)
	recommendationSvc := service.NewRecommendationService(departmentRepo, nil, logr)
	chatSvc := service.NewChatService(faqRepo, cfg.Chat.FallbackMessage, logr)
	applicationSvc := service.NewApplicationService(applicationRepo, programRepo, nil, logr)

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	waiverHandler := handler.NewWaiverHandler(waiverSvc, metricsSvc)
	recommendationHandler := handler.NewRecommendationHandler(recommendationSvc, metricsSvc)
	chatHandler := handler.NewChatHandler(chatSvc, metricsSvc)
	applicationHandler := handler.NewApplicationHandler(applicationSvc, cfg.Exports.Enabled)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/programs", catalogHandler.ListPrograms)
		api.GET("/programs/:code", catalogHandler.GetProgram)
		api.GET("/departments", catalogHandler.ListDepartments)
		api.POST("/waivers/recommend", waiverHandler.Recommend)
		api.POST("/recommendations", recommendationHandler.Recommend)
		api.POST("/chat", chatHandler.Chat)
		api.POST("/applications", applicationHandler.Submit)
		api.GET("/applications/:id", applicationHandler.Get)
		api.GET("/applications/:id/export", applicationHandler.Export)
		api.GET("/metrics/summary", metricsHandler.Summary)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
