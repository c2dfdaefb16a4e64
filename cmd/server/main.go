package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	_ "github.com/sereneHealth/web-api/docs" // swagger docs

	"github.com/sereneHealth/web-api/internal/auth"
	"github.com/sereneHealth/web-api/internal/cache"
	"github.com/sereneHealth/web-api/internal/config"
	"github.com/sereneHealth/web-api/internal/db"
	"github.com/sereneHealth/web-api/internal/handler"
	"github.com/sereneHealth/web-api/internal/mail"
	"github.com/sereneHealth/web-api/internal/model"
	"github.com/sereneHealth/web-api/internal/repository"
	"github.com/sereneHealth/web-api/internal/router"
	"github.com/sereneHealth/web-api/internal/service"
)

// @title Serene Health Web API
// @version 1.0
// @description API documentation for serene health web services
// @host localhost:3002
// @BasePath /
// @schemes http https
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Warn().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Post{},
			&model.Event{},
			&model.Subscriber{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warn().Err(err).Msg("drop table (may not exist)")
			}
		}
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Event{},
		&model.Subscriber{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	subscriberRepo := repository.NewSubscriberRepository(gormDB)

	// Auth components
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)

	// Mail
	mailer := mail.NewResendMailer(resend.NewClient(cfg.ResendAPIKey), cfg.MailFrom, logger)

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	postService := service.NewPostService(postRepo, cacheClient)
	eventService := service.NewEventService(eventRepo, cacheClient)
	newsletterService := service.NewNewsletterService(subscriberRepo, mailer, logger)
	contactService := service.NewContactService(mailer, cfg.MailInbox)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	postHandler := handler.NewPostHandler(postService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, logger)
	contactHandler := handler.NewContactHandler(contactService, logger)

	e := echo.New()
	router.Register(
		e,
		tokens,
		authHandler,
		postHandler,
		eventHandler,
		newsletterHandler,
		contactHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	logger.Info().Str("url", swaggerHost+"/api-docs/index.html").Msg("swagger documentation available")

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server start")
	}
}
