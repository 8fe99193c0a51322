package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                         string
	MongoURI                     string
	MongoDatabase                string
	FeedbackCollection           string
	FailedNotificationCollection string
	Timeout                      time.Duration
	Timezone                     string
	ServerLog                    *log.Logger
	JWTSecret                    []byte
	JWTIssuer                    string
	TokenTTL                     time.Duration
	AdminUsername                string
	AdminPassword                string
	MessengerEndpoint            string
	MessengerDestination         string
	NotificationRecipient        string
	MessengerTimeout             time.Duration
	NotificationAttempts         int
	AllowedOrigins               []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	messengerEndpoint := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_URL"))

	messengerDestination := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_DESTINATION"))
	if messengerDestination == "" {
		messengerDestination = "email"
	}

	messengerTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			messengerTimeout = parsed
		}
	}

	notificationAttempts := 3
	if raw := strings.TrimSpace(os.Getenv("NOTIFICATION_ATTEMPTS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			notificationAttempts = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	jwtSecret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	tokenTTL := 12 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			tokenTTL = parsed
		}
	}

	adminUsername := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be configured")
	}

	cfg := Config{
		Addr:                         envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:                     envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:                envOrDefault("MONGO_DB", "facility-feedback"),
		FeedbackCollection:           envOrDefault("FEEDBACK_COLLECTION", "feedbacks"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		Timeout:                      timeout,
		Timezone:                     envOrDefault("TIMEZONE", "Asia/Kolkata"),
		ServerLog:                    log.New(os.Stdout, "[facility-feedback-api] ", log.LstdFlags|log.Lshortfile),
		JWTSecret:                    []byte(jwtSecret),
		JWTIssuer:                    envOrDefault("AUTH_JWT_ISSUER", "facility-feedback-auth"),
		TokenTTL:                     tokenTTL,
		AdminUsername:                adminUsername,
		AdminPassword:                adminPassword,
		MessengerEndpoint:            messengerEndpoint,
		MessengerDestination:         messengerDestination,
		NotificationRecipient:        strings.TrimSpace(os.Getenv("NOTIFICATION_RECIPIENT")),
		MessengerTimeout:             messengerTimeout,
		NotificationAttempts:         notificationAttempts,
		AllowedOrigins:               allowedOrigins,
	}

	cfg.ServerLog.Printf("loaded config: messengerEndpoint=%q destination=%q recipient=%q", messengerEndpoint, messengerDestination, cfg.NotificationRecipient)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
