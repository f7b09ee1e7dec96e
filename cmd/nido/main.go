package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/nido/internal/api"
	"github.com/terraincognita07/nido/internal/db"
	"github.com/terraincognita07/nido/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	codeVerifier, err := resolveAccessCodeVerifier()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "nido.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, secretKey, codeVerifier, location, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Nido",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Nido listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey() (string, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return "", errors.New("SECRET_KEY must be set")
	}
	if secret == "change_me_in_production" {
		return "", errors.New("SECRET_KEY must not use the placeholder value")
	}
	if len(secret) < 16 {
		return "", errors.New("SECRET_KEY must be at least 16 characters")
	}
	return secret, nil
}

// resolveAccessCodeVerifier prefers a bcrypt hash so the shared access code
// never has to live in plaintext configuration.
func resolveAccessCodeVerifier() (services.CodeVerifier, error) {
	if hash := os.Getenv("ACCESS_CODE_HASH"); hash != "" {
		return services.NewBcryptCodeVerifier(hash), nil
	}
	if code := os.Getenv("ACCESS_CODE"); code != "" {
		return services.NewStaticCodeVerifier(code), nil
	}
	return nil, errors.New("ACCESS_CODE or ACCESS_CODE_HASH must be set")
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
