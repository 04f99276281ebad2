// @title UMS Talenta Backend API
// @version 1.0
// @description Student talent directory for Universitas Muhammadiyah Surakarta
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@ums.ac.id

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "UMS_TALENTA_BACK-END/docs" // This is required for swagger
	"UMS_TALENTA_BACK-END/internal/cache"
	"UMS_TALENTA_BACK-END/internal/config"
	"UMS_TALENTA_BACK-END/internal/handlers"
	"UMS_TALENTA_BACK-END/internal/middleware"
	"UMS_TALENTA_BACK-END/internal/routes"
	"UMS_TALENTA_BACK-END/internal/store"
)

func loggerConfig(cfg config.LogConfig) (zap.Config, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Production() {
		zc = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc, nil
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zc, err := loggerConfig(cfg)
	if err != nil {
		return nil, err
	}
	return zc.Build()
}

func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, err
	}
	// simple protocol is required behind PgBouncer
	pc.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pc.ConnConfig.RuntimeParams["application_name"] = "ums-talenta-backend"
	pc.ConnConfig.RuntimeParams["statement_timeout"] = "30000"
	pc.MaxConns = cfg.Database.MaxConns
	pc.MinConns = cfg.Database.MinConns
	pc.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pool, err := newPool(ctx, cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx, pool); err != nil {
			logger.Fatal("migration failed", zap.Error(err))
		}
	}

	rdb := cache.New(cfg.Redis)
	defer rdb.Close()
	if err := rdb.Ping(ctx); err != nil {
		// revocation and rate limiting degrade until redis is reachable; /readyz reports it
		logger.Warn("redis ping failed", zap.Error(err))
	}

	users := store.NewUserRepository(pool)
	profiles := store.NewProfileRepository(pool)
	talents := store.NewTalentRepository(pool)
	directory := store.NewDirectoryRepository(pool)
	endorsements := store.NewEndorsementRepository(pool)

	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(users, rdb, &cfg.JWT, logger),
		Health:       handlers.NewHealthHandler(pool, rdb, logger),
		Profile:      handlers.NewProfileHandler(profiles, cfg.Media, logger),
		MyTalent:     handlers.NewMyTalentHandler(profiles, talents, logger),
		Talents:      handlers.NewTalentHandler(directory, profiles, cfg.Media.URLPrefix, logger),
		Endorsements: handlers.NewEndorsementHandler(profiles, endorsements, logger),
		Admin:        handlers.NewAdminHandler(directory, profiles, cfg.Media, logger),
	}
	if cfg.IsGoogleOAuthConfigured() {
		h.Google = handlers.NewGoogleAuthHandler(users, rdb, cfg, logger)
	} else {
		logger.Info("google sign-in disabled: GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set")
	}

	proxies, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		logger.Fatal("invalid TRUSTED_PROXIES", zap.Error(err))
	}

	router := routes.NewRouter(h, routes.Options{
		JWT:            &cfg.JWT,
		RateLimit:      cfg.RateLimit,
		Media:          cfg.Media,
		QueryTimeout:   cfg.Database.QueryTimeout,
		Limiter:        rdb,
		Logger:         logger,
		TrustedProxies: proxies,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
