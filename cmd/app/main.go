package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"deliveryhub/cmd"
	"deliveryhub/internal/adapters/out/postgres/businessrepo"
	"deliveryhub/internal/adapters/out/postgres/deliveryrepo"
	"deliveryhub/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     mustEnv("DB_HOST"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     mustEnv("DB_USER"),
		DBPassword: mustEnv("DB_PASSWORD"),
		DBName:     mustEnv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		JWTSecret: mustEnv("JWT_SECRET"),

		DeliveryExpiry: time.Duration(envIntOrDefault("DELIVERY_EXPIRY_MINUTES", 60)) * time.Minute,
		OfferWindow:    time.Duration(envIntOrDefault("PREFERRED_OFFER_WINDOW_MINUTES", 30)) * time.Minute,
		PickupTimeout:  time.Duration(envIntOrDefault("PICKUP_TIMEOUT_MINUTES", 45)) * time.Minute,
		StaleThreshold: time.Duration(envIntOrDefault("STALE_DELIVERY_HOURS", 4)) * time.Hour,

		WhatsAppAPIURL:   os.Getenv("WHATSAPP_API_URL"),
		WhatsAppToken:    os.Getenv("WHATSAPP_TOKEN"),
		NotifyMaxRetries: envIntOrDefault("NOTIFY_MAX_RETRIES", 2),
		NotifyRetryDelay: time.Duration(envIntOrDefault("NOTIFY_RETRY_DELAY_MS", 500)) * time.Millisecond,
		NotifyTimeout:    time.Duration(envIntOrDefault("NOTIFY_TIMEOUT_MS", 5000)) * time.Millisecond,
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, raw)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&businessrepo.BusinessDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateServer()
	server.RegisterRoutes(e, app.CreateAuthMiddleware())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
