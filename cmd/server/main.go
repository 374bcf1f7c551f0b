// Alumni Nexus API server.
//
// @title Alumni Nexus API
// @version 1.0
// @description Role-gated alumni engagement portal: blogs, broadcasts, and events.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"alumninexus/config"
	_ "alumninexus/docs"
	"alumninexus/internal/adapters/auth"
	"alumninexus/internal/adapters/email"
	httpdelivery "alumninexus/internal/delivery/http"
	"alumninexus/internal/delivery/http/controllers"
	"alumninexus/internal/delivery/http/middleware"
	"alumninexus/internal/domain"
	"alumninexus/internal/repository/jsonfile"
	"alumninexus/internal/repository/postgres"
	"alumninexus/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	var (
		blogRepo      domain.BlogRepository
		broadcastRepo domain.BroadcastRepository
		eventRepo     domain.EventRepository
	)
	switch cfg.StorageDriver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("failed to reach database", "err", err)
			os.Exit(1)
		}
		blogRepo = postgres.NewBlogRepository(db)
		broadcastRepo = postgres.NewBroadcastRepository(db)
		eventRepo = postgres.NewEventRepository(db)
	case "jsonfile":
		blogRepo = jsonfile.NewBlogRepository(cfg.DataDir, logger)
		broadcastRepo = jsonfile.NewBroadcastRepository(cfg.DataDir, logger)
		eventRepo = jsonfile.NewEventRepository(cfg.DataDir, logger)
	default:
		logger.Error("unknown storage driver", "driver", cfg.StorageDriver)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	blogService := services.NewBlogService(blogRepo, serviceTimeout)
	broadcastService := services.NewBroadcastService(broadcastRepo, emailService, cfg.BroadcastNotify, logger, serviceTimeout)
	eventService := services.NewEventService(eventRepo, serviceTimeout)

	roleToken := auth.NewJWTRoleToken(cfg.JWTSecret)

	mux := httpdelivery.NewRouter(httpdelivery.RouterConfig{
		Blogs:        controllers.NewBlogController(logger, blogService),
		Broadcasts:   controllers.NewBroadcastController(logger, broadcastService),
		Events:       controllers.NewEventController(logger, eventService),
		Auth:         controllers.NewAuthController(logger, roleToken),
		Verifier:     roleToken,
		AuthDisabled: cfg.AuthDisabled,
	})

	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"env", cfg.Environment,
			"storage", cfg.StorageDriver,
			"auth_disabled", cfg.AuthDisabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
