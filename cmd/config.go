package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	DeliveryExpiry time.Duration
	OfferWindow    time.Duration
	PickupTimeout  time.Duration
	StaleThreshold time.Duration

	WhatsAppAPIURL   string
	WhatsAppToken    string
	NotifyMaxRetries int
	NotifyRetryDelay time.Duration
	NotifyTimeout    time.Duration
}
