package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sereneHealth/web-api/internal/config"
	"github.com/sereneHealth/web-api/internal/db"
	"github.com/sereneHealth/web-api/internal/model"
	"github.com/sereneHealth/web-api/internal/repository"
)

// Seeds an initial admin user and a welcome post so a fresh deployment has
// something to show. Safe to run repeatedly: the admin is looked up by email
// first.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@serenescheal.org")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "changeme123")

	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	ctx := context.Background()

	existing, err := userRepo.FindByEmail(ctx, adminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Fatal().Err(err).Msg("check admin user")
	}
	if existing != nil {
		logger.Info().Str("email", adminEmail).Msg("admin user already present, nothing to do")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash admin password")
	}

	admin := &model.User{
		FirstName:    "Site",
		LastName:     "Admin",
		Email:        adminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logger.Fatal().Err(err).Msg("create admin user")
	}
	logger.Info().Str("email", adminEmail).Uint("id", admin.ID).Msg("admin user created")

	welcome := &model.Post{
		UserID:  admin.ID,
		Title:   "Welcome to Serene Scheal Initiative",
		Content: "Our mission is to create healthier school environments and empower students through comprehensive health programs.",
		Author:  "Serene Scheal Initiative",
	}
	if err := postRepo.Create(ctx, welcome); err != nil {
		logger.Fatal().Err(err).Msg("create welcome post")
	}
	logger.Info().Uint("id", welcome.ID).Msg("welcome post created")

	logger.Info().Msg("seed completed")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
