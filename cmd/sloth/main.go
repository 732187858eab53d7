package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/StephanBK/sloth/internal/api"
	"github.com/StephanBK/sloth/internal/db"
	"github.com/StephanBK/sloth/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	port, err := resolvePort()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	location, err := resolveLocation()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	database, err := db.OpenSQLite(getEnv("DB_PATH", "data/sloth.db"))
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	i18nManager, err := i18n.NewManager(getEnv("DEFAULT_LANGUAGE", i18n.LangDE))
	if err != nil {
		log.Fatalf("init i18n: %v", err)
	}

	handler := api.NewHandler(api.HandlerConfig{
		DB:           database,
		SecretKey:    []byte(secretKey),
		Location:     location,
		CookieSecure: getEnv("COOKIE_SECURE", "false") == "true",
		I18n:         i18nManager,
	})

	app := fiber.New(fiber.Config{
		AppName:      "Sloth",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()
	log.Printf("sloth listening on :%s (default language %s)", port, i18nManager.DefaultLanguage())

	<-ctx.Done()
	log.Println("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func getEnv(key string, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	switch secret {
	case "change_me_in_production", "replace_with_at_least_32_random_characters":
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(os.Getenv("PORT"))
	if raw == "" {
		return "8080", nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return raw, nil
}

func resolveLocation() (*time.Location, error) {
	name := getEnv("TZ", "Europe/Berlin")
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", name, err)
	}
	return location, nil
}
