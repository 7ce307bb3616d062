package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Gallery database configuration
	Database DatabaseConfig

	// Redis configuration (ticket record store)
	Redis RedisConfig

	// Payment simulator configuration
	Payment PaymentConfig

	// Notification dispatch
	Kafka KafkaConfig

	// Wallet pass export
	Wallet WalletConfig

	// Logging
	LogLevel string
}

// DatabaseConfig holds the gallery database configuration.
// The gallery store is optional; the core issuance pipeline only needs
// the key-value store.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string
	Enabled  bool
}

// RedisConfig holds Redis configuration. Enabled=false falls back to the
// in-memory store (records do not survive a restart; demo/test mode).
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
	Enabled  bool
}

// PaymentConfig holds the payment simulator configuration
type PaymentConfig struct {
	Currency    string
	FailureRate float64
	MinDelay    time.Duration
	MaxDelay    time.Duration
	Timeout     time.Duration
	Seed        int64
}

// KafkaConfig holds notification producer configuration
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// WalletConfig holds wallet pass export configuration
type WalletConfig struct {
	PassDir            string
	PassTypeIdentifier string
	TeamIdentifier     string
	OrganizationName   string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Gallery database configuration
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "eventx_db"),
			User:     getEnv("DB_USER", "eventx_user"),
			Password: getEnv("DB_PASSWORD", "eventx_password"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Enabled:  getBoolEnv("DB_ENABLED", true),
		},

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			Enabled:  getBoolEnv("REDIS_ENABLED", true),
		},

		// Payment simulator configuration
		Payment: PaymentConfig{
			Currency:    getEnv("PAYMENT_CURRENCY", "RUB"),
			FailureRate: getFloatEnv("PAYMENT_FAILURE_RATE", 0.1),
			MinDelay:    getDurationEnv("PAYMENT_MIN_DELAY", 1*time.Second),
			MaxDelay:    getDurationEnv("PAYMENT_MAX_DELAY", 2*time.Second),
			Timeout:     getDurationEnv("PAYMENT_TIMEOUT", 10*time.Second),
			Seed:        getInt64Env("PAYMENT_SEED", 0), // 0 = time-seeded
		},

		// Notification dispatch
		Kafka: KafkaConfig{
			Enabled: getBoolEnv("KAFKA_ENABLED", false),
			Brokers: getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_NOTIFICATION_TOPIC", "notifications"),
		},

		// Wallet pass export
		Wallet: WalletConfig{
			PassDir:            getEnv("WALLET_PASS_DIR", "./passes"),
			PassTypeIdentifier: getEnv("WALLET_PASS_TYPE_ID", "pass.com.eventx.ticket"),
			TeamIdentifier:     getEnv("WALLET_TEAM_ID", "EVENTX"),
			OrganizationName:   getEnv("WALLET_ORG_NAME", "EventX"),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// GetServerAddress returns the address the HTTP server binds to
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the base path for API routes
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode != "release"
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getInt64Env gets an int64 environment variable with a fallback value
func getInt64Env(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return fallback
}

// getFloatEnv gets a float environment variable with a fallback value
func getFloatEnv(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
