package main

import (
	"context"
	"net/http"
	"time"

	_ "awqaf/api/swagger" // swagger docs
	"awqaf/internal/config"
	"awqaf/internal/database"
	"awqaf/internal/handler"
	"awqaf/internal/logger"
	"awqaf/internal/metrics"
	"awqaf/internal/middleware"
	"awqaf/internal/repository"
	"awqaf/internal/service"
	"awqaf/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:generate swag init -g cmd/api/main.go -o api/swagger --parseInternal

// @title           Awqaf Tracker API
// @version         1.0
// @description     Waqf registry, profit allocation and payout reconciliation.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, envErr := config.Load()
	log := logger.New(cfg.LogLevel)
	if envErr != nil {
		log.WithError(envErr).Info("no dotenv file, using process environment")
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.NewConnection(cfg.DSN(), log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	log.Info("connected to PostgreSQL")

	m := metrics.New(prometheus.DefaultRegisterer)
	if err := handler.RegisterValidators(); err != nil {
		log.WithError(err).Fatal("failed to register validators")
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	// Repositories
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	waqfRepo := repository.NewWaqfRepository(db)
	beneficiaryRepo := repository.NewBeneficiaryRepository(db)
	ruleRepo := repository.NewDistributionRuleRepository(db)
	profitRepo := repository.NewProfitRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	flowRepo := repository.NewFlowRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Rule writes are serialized per waqf: redis when configured, postgres advisory locks otherwise
	locker := repository.NewAdvisoryLocker(db)
	if cfg.RedisAddr != "" {
		rdb, err := database.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, falling back to advisory locks")
		} else {
			defer rdb.Close()
			locker = repository.NewRedisLocker(rdb, txManager, cfg.RuleLockTTL, log)
			log.WithField("addr", cfg.RedisAddr).Info("using redis rule locks")
		}
	}

	// Services
	userService := service.NewUserService(userRepo, cfg.JWTSecret)
	waqfService := service.NewWaqfService(waqfRepo, auditRepo, txManager, cfg.DefaultCurrency)
	beneficiaryService := service.NewBeneficiaryService(waqfRepo, beneficiaryRepo, auditRepo, txManager)
	ruleService := service.NewDistributionRuleService(waqfRepo, beneficiaryRepo, ruleRepo, auditRepo, locker, m)
	allocationService := service.NewAllocationService(waqfRepo, beneficiaryRepo, ruleRepo, profitRepo, payoutRepo, auditRepo, txManager, wsHub, m)
	payoutService := service.NewPayoutService(waqfRepo, beneficiaryRepo, profitRepo, ruleRepo, payoutRepo, dashboardRepo, auditRepo, txManager, wsHub, m, cfg.ReconcileIncludePending)
	profitService := service.NewProfitService(waqfRepo, profitRepo, auditRepo, txManager)
	dashboardService := service.NewDashboardService(waqfRepo, beneficiaryRepo, ruleRepo, payoutRepo, dashboardRepo, txManager, cfg.ReconcileIncludePending)
	flowService := service.NewFlowService(flowRepo)
	auditService := service.NewAuditService(auditRepo, waqfService)
	exportService := service.NewExportService(allocationService)

	go purgeRefreshTokens(userService, log)

	// Handlers
	secureCookie := cfg.GinMode == gin.ReleaseMode
	userHandler := handler.NewUserHandler(userService, log, secureCookie)
	waqfHandler := handler.NewWaqfHandler(waqfService, log)
	beneficiaryHandler := handler.NewBeneficiaryHandler(beneficiaryService, log)
	ruleHandler := handler.NewDistributionRuleHandler(ruleService, log)
	allocationHandler := handler.NewAllocationHandler(allocationService, exportService, log)
	payoutHandler := handler.NewPayoutHandler(payoutService, log)
	profitHandler := handler.NewProfitHandler(profitService, payoutService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, flowService, log)
	auditHandler := handler.NewAuditHandler(auditService, log)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger(log), m.Middleware())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	secret := []byte(cfg.JWTSecret)

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, secret, waqfService)
	})

	// API Routing
	requireAuth := middleware.RequireAuth(secret)
	api := router.Group("/api")

	userHandler.RegisterRoutes(api.Group("/auth"), requireAuth)

	authed := api.Group("", requireAuth)
	auditHandler.RegisterRoutes(authed)

	waqfs := authed.Group("/waqfs")
	scoped := waqfs.Group("/:govId", middleware.RequireWaqfAccess(waqfService))
	waqfHandler.RegisterRoutes(waqfs, scoped)
	beneficiaryHandler.RegisterRoutes(scoped)
	ruleHandler.RegisterRoutes(scoped)
	allocationHandler.RegisterRoutes(scoped)
	payoutHandler.RegisterRoutes(scoped)
	profitHandler.RegisterRoutes(scoped)
	dashboardHandler.RegisterRoutes(scoped)

	log.WithField("port", cfg.Port).Info("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}

func purgeRefreshTokens(users service.UserService, log *logrus.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if err := users.PurgeExpiredTokens(context.Background()); err != nil {
			log.WithError(err).Warn("failed to purge expired refresh tokens")
		}
	}
}
