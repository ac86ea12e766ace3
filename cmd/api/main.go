package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"dictapi/docs"
	"dictapi/internal/auth"
	"dictapi/internal/config"
	"dictapi/internal/database"
	"dictapi/internal/database/migration"
	"dictapi/internal/extract"
	handlers "dictapi/internal/http/handler"
	"dictapi/internal/http/middleware"
	"dictapi/internal/logger"
	tracing "dictapi/internal/otel"
	"dictapi/internal/repository"
	"dictapi/internal/repository/postgres"
	"dictapi/internal/repository/sqlite"
	"dictapi/internal/service"
	"dictapi/internal/storage"
)

// @title Dictionary API
// @version 1.0
// @description Personal dictionary: extracts lemmas, key phrases and their relations from pasted texts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, logger.Location(cfg.Timezone))
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Open the configured database (connection pool via database/sql, traced by otelsql)
	db, err := database.Open(cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	dbHost := cfg.Database.Host
	if cfg.Database.Driver != database.DriverPostgres {
		dbHost = cfg.Database.Path
	}
	dialect := cfg.Database.Driver
	if dialect == "" {
		dialect = database.DriverSQLite
	}
	if err := migration.EnsureMigrated(ctx, db, dialect, zlog, dbHost); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	var (
		dictRepo repository.DictionaryRepository
		userRepo repository.UserRepository
	)
	if dialect == database.DriverPostgres {
		dictRepo, userRepo = postgres.NewDictionaryPostgres(db), postgres.NewUserPostgres(db)
	} else {
		dictRepo, userRepo = sqlite.NewDictionarySQLite(db), sqlite.NewUserSQLite(db)
	}

	// Submitted texts are archived only when object storage is configured
	var archive storage.Storage
	if cfg.MinIO.Endpoint != "" {
		if archive, err = storage.NewMinIO(cfg.MinIO); err != nil {
			zlog.Fatal("failed to initialize object storage", zap.Error(err))
		}
	} else {
		zlog.Info("text_archive_disabled", zap.String("reason", "MINIO_ENDPOINT is empty"))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	extractor := extract.New(extract.NewPerceptronTagger(), nil)
	dictSvc, err := service.NewDictionaryService(extractor, dictRepo, archive, service.Options{
		EnforceOwnership: cfg.Dictionary.EnforceOwnership,
		MaxTextBytes:     cfg.Dictionary.MaxTextBytes,
		PageSize:         cfg.Dictionary.PageSize,
		FetchTimeout:     time.Duration(cfg.Dictionary.FetchTimeoutSec) * time.Second,
		Registerer:       reg,
	})
	if err != nil {
		zlog.Fatal("failed to initialize dictionary service", zap.Error(err))
	}

	if cfg.Auth.Secret == "" {
		zlog.Warn("auth_secret_generated", zap.String("reason", "AUTH_SECRET is empty; sessions end on restart"))
	}
	tokens, err := auth.NewTokenManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)
	if err != nil {
		zlog.Fatal("failed to initialize session tokens", zap.Error(err))
	}
	authSvc := service.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Structured access log
	app.Use(middleware.Logger(zlog))

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		zlog.Fatal("failed to register http metrics", zap.Error(err))
	}
	app.Use(prom.Handler())

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:         db,
		Dictionary: dictSvc,
		Auth:       authSvc,
		CookieName: cfg.Auth.CookieName,
		Gatherer:   reg,
	})

	addr := ":" + cfg.Port
	go func() {
		<-ctx.Done()
		zlog.Info("server_shutdown")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server_starting", zap.String("addr", addr), zap.String("db_driver", dialect))
	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
