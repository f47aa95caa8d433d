package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gomodule/redigo/redis"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"infinityqr-go/internal/dto"
	"infinityqr-go/internal/handler"
	"infinityqr-go/internal/i18n"
	"infinityqr-go/internal/middleware"
	"infinityqr-go/internal/provider"
	"infinityqr-go/internal/repository"
	"infinityqr-go/internal/service"
	"infinityqr-go/internal/storage"
	"infinityqr-go/pkg/logging"
)

func initConfig() {
	wd, _ := os.Getwd()
	log.Printf("Loading config from: %s/config.yaml", wd)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
}

func buildShorteners(client *http.Client, mappings provider.MappingStore) []provider.Shortener {
	domain := viper.GetString("app.domain")

	return []provider.Shortener{
		provider.NewRebrandly(provider.RebrandlyConfig{
			BaseURL:    viper.GetString("providers.rebrandly.base_url"),
			APIKey:     viper.GetString("providers.rebrandly.api_key"),
			LinkDomain: viper.GetString("providers.rebrandly.link_domain"),
		}, client),
		provider.NewTinyURL(provider.TinyURLConfig{
			BaseURL:     viper.GetString("providers.tinyurl.base_url"),
			BrandDomain: domain,
		}, client, mappings),
		provider.NewUoIm(provider.UoImConfig{
			BaseURL: viper.GetString("providers.uoim.base_url"),
		}, client),
		provider.NewLocalShortener(domain, mappings),
	}
}

func buildQRGenerators(client *http.Client) []provider.QRGenerator {
	return []provider.QRGenerator{
		provider.NewQRCodeUK(provider.QRCodeUKConfig{
			BaseURL:   viper.GetString("providers.qrcodeuk.base_url"),
			APIKey:    viper.GetString("providers.qrcodeuk.api_key"),
			Endpoints: viper.GetStringSlice("providers.qrcodeuk.endpoints"),
		}, client),
		provider.NewQRServer(provider.QRServerConfig{
			BaseURL:      viper.GetString("providers.qrserver.base_url"),
			ProbeTimeout: viper.GetDuration("providers.qrserver.probe_timeout"),
		}, client),
		provider.NewLocalQR(),
	}
}

func startServer(r *gin.Engine, pool *redis.Pool) {
	addr := viper.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logging.Logger.Info("Server is running on " + addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if pool != nil {
		if err := pool.Close(); err != nil {
			logging.Logger.Warn("Redis pool close failed", zap.Error(err))
		}
	}

	logging.Logger.Info("Server exiting")
}

func main() {
	initConfig()
	logging.InitLoggerFromConfig()
	logging.Logger.Info("Application started")

	dto.RegisterCustomValidators()

	db, err := repository.InitDB(viper.GetString("db.path"), logging.Logger, logging.AtomicLevel)
	if err != nil {
		logging.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	var pool *redis.Pool
	if viper.GetBool("redis.enabled") {
		pool = repository.InitRedis(viper.GetString("redis.addr"), viper.GetString("redis.password"))
	}

	var persistent storage.Store
	if pool != nil && viper.GetBool("redis.kv_store") {
		persistent = storage.NewRedisStore(pool, "kv:")
	} else {
		fileStore, err := storage.NewFileStore(viper.GetString("storage.dir"))
		if err != nil {
			logging.Logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
		persistent = fileStore
	}
	memStore := storage.NewMemoryStore()

	history := service.NewHistoryService(persistent, viper.GetInt("app.max_history_items"))
	stats := service.NewStatsService(db, pool)
	redirects := service.NewRedirectService(db, pool, stats)

	client := &http.Client{}
	attemptTimeout := viper.GetDuration("app.attempt_timeout")

	shorten := service.NewShortenService(buildShorteners(client, redirects), history, attemptTimeout)
	qr := service.NewQRService(buildQRGenerators(client), history, attemptTimeout)
	sessions := service.NewSessionService(persistent, memStore, db, viper.GetString("app.session_secret"))
	prefs := service.NewPreferencesService(persistent)
	suggestions := service.NewSuggestionService(history)
	dashboard := service.NewDashboardService(history, db)

	shortenHandler := handler.NewShortenHandler(shorten, suggestions)
	qrHandler := handler.NewQRHandler(qr, history)
	historyHandler := handler.NewHistoryHandler(history)
	authHandler := handler.NewAuthHandler(sessions)
	prefsHandler := handler.NewPreferencesHandler(prefs)
	dashboardHandler := handler.NewDashboardHandler(dashboard, redirects, stats)
	redirectHandler := handler.NewRedirectHandler(redirects)

	bundle, err := i18n.InitI18n([]string{
		"./i18n/en.toml",
		"./i18n/zh.toml",
	}, "en")
	if err != nil {
		logging.Logger.Fatal("Failed to initialize i18n", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.GlobalErrorMiddleware())
	r.Use(middleware.ZapGinLogger(logging.Logger))
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.I18nMiddleware(bundle))

	api := r.Group("/api")
	{
		api.POST("/shorten", shortenHandler.Create)
		api.GET("/alias-suggestions", shortenHandler.SuggestAliases)

		api.POST("/qrcode", qrHandler.Create)
		api.POST("/qrcodes/:id/download", qrHandler.Download)

		api.GET("/links", historyHandler.ListLinks)
		api.DELETE("/links", historyHandler.ClearLinks)
		api.DELETE("/links/:id", historyHandler.RemoveLink)
		api.GET("/qrcodes", historyHandler.ListQRCodes)
		api.DELETE("/qrcodes", historyHandler.ClearQRCodes)
		api.DELETE("/qrcodes/:id", historyHandler.RemoveQRCode)

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authHandler.Me)

		api.GET("/preferences", prefsHandler.Get)
		api.PUT("/preferences", prefsHandler.Update)

		gated := api.Group("", middleware.AuthRequired(sessions))
		{
			gated.GET("/dashboard", dashboardHandler.Summary)
			gated.GET("/mappings", dashboardHandler.ListMappings)
			gated.GET("/stats/:code", dashboardHandler.StatsByCode)
		}
	}

	r.GET("/:code", redirectHandler.Resolve)

	c := cron.New()
	_, addErr := c.AddFunc("*/10 * * * *", func() {
		if err := stats.StatisticalData(); err != nil {
			logging.Logger.Error("Failed to flush visit stats via cron job", zap.Error(err))
		}
	})
	if addErr != nil {
		logging.Logger.Fatal("Failed to schedule cron job", zap.Error(addErr))
	}
	c.Start()

	startServer(r, pool)
}
