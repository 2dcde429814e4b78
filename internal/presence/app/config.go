package app

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/joho/godotenv"
)

type Config struct {
	Issuer       string        // Optional: issuer claim for session credentials (default: rollcall)
	Algorithm    string        // Optional: session signing algorithm (ES256, EdDSA) (default: EdDSA)
	NumKeys      int           // Optional: number of signing keys to generate (default: 3)
	SessionTTL   time.Duration // Optional: session credential lifetime (default: 12h)
	CookieSecure bool          // Optional: mark the session cookie Secure (default: true)

	DatabaseFile  string // Optional: path to SQLite database file (default: ./rollcall.db)
	PepperFile    string // Optional: path to file containing pepper for password hashing (default: ./pepper)
	CheckInPolicy string // Optional: allow or reject a check in while checked in (default: allow)

	BootstrapAdminName     string // Optional: name of the first administrator (default: Administrator)
	BootstrapAdminEmail    string // Optional: creates the first administrator on an empty database
	BootstrapAdminPassword string // Optional: generated and logged once when empty

	GeoIPCityDB   string // Optional: MaxMind GeoLite2/GeoIP2 City database for access log enrichment
	KafkaBroker   string // Optional: enables presence event publishing
	KafkaTopic    string // Optional: presence event topic (default: presence-events)
	KafkaUsername string // Optional: SASL/PLAIN username
	KafkaPassword string // Optional: SASL/PLAIN password

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. Outside prod a
// .env file in the working directory is loaded first; variables already
// set in the environment win.
func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	// httpx reads the limits at init, before .env is loaded.
	httpx.StrictLimit = httpx.ParseRateLimitFromEnv("STRICT", httpx.StrictLimit)
	httpx.ModerateLimit = httpx.ParseRateLimitFromEnv("MODERATE", httpx.ModerateLimit)
	httpx.LenientLimit = httpx.ParseRateLimitFromEnv("LENIENT", httpx.LenientLimit)

	return Config{
		Issuer:       getEnvOrDefault("ROLLCALL_ISSUER", "rollcall"),
		Algorithm:    getEnvOrDefault("ROLLCALL_ALGORITHM", "EdDSA"),
		NumKeys:      getEnvIntOrDefault("ROLLCALL_NUM_KEYS", 3),
		SessionTTL:   getEnvDurationOrDefault("ROLLCALL_SESSION_TTL", jwtx.DefaultSessionTTL),
		CookieSecure: getEnvBoolOrDefault("ROLLCALL_COOKIE_SECURE", true),

		DatabaseFile:  getEnvOrDefault("ROLLCALL_DATABASE_FILE", "rollcall.db"),
		PepperFile:    getEnvOrDefault("ROLLCALL_PEPPER_FILE", "pepper"),
		CheckInPolicy: getEnvOrDefault("PRESENCE_CHECKIN_POLICY", "allow"),

		BootstrapAdminName:     getEnvOrDefault("BOOTSTRAP_ADMIN_NAME", "Administrator"),
		BootstrapAdminEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),

		GeoIPCityDB:   os.Getenv("GEOIP_CITY_DB"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnvOrDefault("KAFKA_TOPIC", "presence-events"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
