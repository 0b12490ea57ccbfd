package server

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juju/clock"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/convertly/convertly-api/docs"
	awsclient "github.com/convertly/convertly-api/internal/client/aws"
	"github.com/convertly/convertly-api/internal/client/exchangerate"
	"github.com/convertly/convertly-api/internal/client/httpclient"
	"github.com/convertly/convertly-api/internal/config"
	"github.com/convertly/convertly-api/internal/db"
	"github.com/convertly/convertly-api/internal/handlers"
	"github.com/convertly/convertly-api/internal/interfaces"
	"github.com/convertly/convertly-api/internal/logger"
	"github.com/convertly/convertly-api/internal/metrics"
	"github.com/convertly/convertly-api/internal/middleware"
	"github.com/convertly/convertly-api/internal/rates"
	"github.com/convertly/convertly-api/internal/services"
)

// Dependencies are the pluggable rate sources. Nil fields disable that
// source.
type Dependencies struct {
	Provider   interfaces.RateProvider
	Repository interfaces.RateRepository
	Publisher  interfaces.RateEventPublisher
	Seed       *rates.Table
	Clock      clock.Clock
	Metrics    *metrics.Metrics
}

// Server owns the rate store, the services built on it and the gin router.
type Server struct {
	cfg                 *config.Config
	router              *gin.Engine
	store               *rates.Store
	metrics             *metrics.Metrics
	conversionService   *services.ConversionService
	exchangeRateService *services.ExchangeRateService
	refresher           *services.RateRefresher
	limiter             *middleware.RateLimiter
	pool                *pgxpool.Pool
}

// New builds a server from configuration, connecting to every optional
// backend cfg names.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	m := metrics.New()
	deps := Dependencies{Clock: clock.WallClock, Metrics: m}

	if cfg.SeedFile != "" {
		seed, err := rates.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		deps.Seed = seed
	}

	var awsCfg aws.Config
	if cfg.NeedsAWS() {
		var err error
		awsCfg, err = awsclient.LoadConfig(ctx, cfg.AWSEndpointURL)
		if err != nil {
			return nil, err
		}
		if err := cfg.ResolveProviderAPIKey(ctx, awsclient.NewSecretsManagerClient(awsCfg)); err != nil {
			return nil, err
		}
	}

	deps.Provider = exchangerate.NewClient(cfg.ProviderURL, cfg.ProviderAPIKey,
		httpclient.WithMetricsCollector(m),
		httpclient.WithMiddleware(httpclient.LoggingMiddleware()),
	)

	if cfg.EventsQueueURL != "" {
		deps.Publisher = awsclient.NewSQSRateEventPublisher(awsclient.NewSQSClient(awsCfg), cfg.EventsQueueURL)
	}

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		deps.Repository = db.NewRateStore(pool)
	}

	s := NewWithDependencies(cfg, deps)
	s.pool = pool
	return s, nil
}

// NewWithDependencies builds a server around already constructed rate
// sources.
func NewWithDependencies(cfg *config.Config, deps Dependencies) *Server {
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	store := rates.NewStore(nil)
	exchangeRateService := services.NewExchangeRateService(store, services.ExchangeRateServiceConfig{
		BaseCurrency: cfg.BaseCurrency,
		Provider:     deps.Provider,
		Repository:   deps.Repository,
		Publisher:    deps.Publisher,
		Seed:         deps.Seed,
		Metrics:      m,
	})

	s := &Server{
		cfg:                 cfg,
		store:               store,
		metrics:             m,
		conversionService:   services.NewConversionService(store, m),
		exchangeRateService: exchangeRateService,
		refresher:           services.NewRateRefresher(exchangeRateService, deps.Clock, cfg.RefreshInterval),
		limiter:             middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	s.InitializeRoutes(router)
	s.router = router
	return s
}

// Router returns the configured gin engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// ExchangeRates exposes the rate service for one-off refreshes.
func (s *Server) ExchangeRates() interfaces.ExchangeRateService {
	return s.exchangeRateService
}

// Start begins periodic rate refreshes.
func (s *Server) Start() {
	s.refresher.Start()
}

// Close stops background work and releases the database pool. It is safe
// to call more than once.
func (s *Server) Close() {
	s.refresher.Stop()
	s.limiter.Stop()
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

// InitializeRoutes registers middleware and every route on router.
func (s *Server) InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS(s.cfg.CORS))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(s.limiter.Middleware())
	router.Use(s.metrics.GinMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())

	// if we are not in production, log request and response bodies
	if s.cfg.IsDevelopment() {
		router.Use(middleware.EnhancedLoggingMiddleware(true))
	}

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		ConversionService:   s.conversionService,
		ExchangeRateService: s.exchangeRateService,
	})
	healthHandler := handlers.NewHealthHandler(common)
	currencyHandler := handlers.NewCurrencyHandler(common)
	conversionHandler := handlers.NewConversionHandler(common)
	unitsHandler := handlers.NewUnitsHandler(common)
	ratesHandler := handlers.NewRatesHandler(common)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	router.GET("/health", healthHandler.Health)
	router.GET("/healthz", healthHandler.Health)

	// Legacy currency converter routes
	router.POST("/convert", currencyHandler.ConvertCurrency)
	router.GET("/get-rates", currencyHandler.GetRates)

	api := router.Group("/api")
	{
		api.POST("/convert", conversionHandler.Convert)
		api.POST("/convert/batch", conversionHandler.ConvertBatch)
		api.GET("/units", unitsHandler.ListUnits)
		api.GET("/rates", ratesHandler.GetRateTable)
		api.POST("/rates/refresh", ratesHandler.RefreshRates)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	logger.Info("Routes initialized",
		zap.Int("routes", len(router.Routes())),
		zap.Bool("development", s.cfg.IsDevelopment()))
}

// configureCORS returns a configured CORS middleware
func configureCORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowMethods = cfg.AllowMethods
	corsConfig.AllowHeaders = cfg.AllowHeaders
	corsConfig.ExposeHeaders = cfg.ExposeHeaders
	corsConfig.AllowCredentials = cfg.AllowCredentials
	return cors.New(corsConfig)
}
