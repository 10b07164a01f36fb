package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deutschprofi_backend/internal/bot"
	"deutschprofi_backend/internal/config"
	"deutschprofi_backend/internal/game"
	httpServer "deutschprofi_backend/internal/http"
	"deutschprofi_backend/internal/http/handlers"
	"deutschprofi_backend/internal/http/middleware"
	"deutschprofi_backend/internal/logger"
	"deutschprofi_backend/internal/repository"
	"deutschprofi_backend/internal/service"
	"deutschprofi_backend/internal/taskstore"
	"deutschprofi_backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version устанавливается при сборке
var Version = "dev"

func main() {
	cfg := config.Load()

	jsonLogs := os.Getenv("LOG_FORMAT") == "json"
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init(logLevel, jsonLogs)
	log := logger.Get()

	store := game.NewStore()
	svc := service.NewSessionService(store)

	// внешнее хранилище заданий (для useStoredTasks)
	if cfg.TaskStoreAPIKey != "" && cfg.TaskStoreBinID != "" {
		svc.SetTaskStore(taskstore.NewClient(cfg.TaskStoreURL, cfg.TaskStoreAPIKey, cfg.TaskStoreBinID))
		log.Info("task store configured", "url", cfg.TaskStoreURL)
	} else {
		log.Warn("task store не настроен - доступна только генерация правилами")
	}

	// архив результатов (опционально)
	var dbPool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect failed", "error", err)
		}
		resultRepo := repository.NewResultRepository(pool)
		if err := resultRepo.EnsureSchema(ctx); err != nil {
			logger.Fatal("db schema failed", "error", err)
		}
		cancel()
		dbPool = pool
		svc.SetResultRepository(resultRepo)
		log.Info("result archive enabled")
	} else {
		log.Warn("DATABASE_URL не задан - архив результатов выключен")
	}
	if dbPool != nil {
		defer dbPool.Close()
	}

	hub := ws.NewHub()
	svc.SetNotifier(hub)

	r := gin.Default()

	// CORS: фронт и бэк живут на разных доменах
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisURL)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := handlers.NewHandler(svc, hub)
	httpServer.RegisterRoutes(r, h)

	// операторский бот
	var adminBot *bot.AdminBot
	if cfg.AdminBotEnabled && cfg.BotToken != "" && len(cfg.AdminTelegramIDs) > 0 {
		var err error
		adminBot, err = bot.NewAdminBot(cfg.BotToken, store, cfg.AdminTelegramIDs)
		if err != nil {
			log.Error("failed to start admin bot", "error", err)
		} else {
			go adminBot.Start()
			log.Info("admin bot started", "admin_ids", cfg.AdminTelegramIDs)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		log.Info("server started", "port", cfg.AppPort, "version", Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	if adminBot != nil {
		adminBot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
