// Package config provides configuration management for the message service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CatalogConfig controls where message catalogs come from.
type CatalogConfig struct {
	// Dir loads catalogs from disk when set; the embedded set is used otherwise.
	Dir        string
	BaseLocale string
	Strict     bool
}

// CacheConfig holds lookup cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LookupsTTL   time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables. A .env file in the
// working directory is read first when present.
func Load() Config {
	// .env is optional when the environment already carries the settings.
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Catalog: CatalogConfig{
			Dir:        getEnv("CATALOG_DIR", ""),
			BaseLocale: getEnv("CATALOG_BASE_LOCALE", "en"),
			Strict:     getEnvBool("CATALOG_STRICT", false),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "xslt_messages"),
			LookupsTTL:                     getEnvDuration("MONGODB_LOOKUPS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	return validation.Errors{
		"server": validation.ValidateStruct(&c.Server,
			validation.Field(&c.Server.Port, validation.Required, validation.By(isPort)),
			validation.Field(&c.Server.RateLimit, validation.Required, validation.Min(1)),
			validation.Field(&c.Server.RateWindow, validation.Required, validation.Min(time.Second)),
		),
		"catalog": validation.ValidateStruct(&c.Catalog,
			validation.Field(&c.Catalog.BaseLocale, validation.Required, validation.By(isLanguageTag)),
		),
		"cache": validation.ValidateStruct(&c.Cache,
			validation.Field(&c.Cache.Size, validation.Required, validation.Min(1)),
		),
		"auth": validation.ValidateStruct(&c.Auth,
			validation.Field(&c.Auth.APIKeys, validation.When(c.Auth.Enabled, validation.Required.Error("API_KEYS must be set when AUTH_ENABLED is true"))),
		),
	}.Filter()
}

func isPort(value any) error {
	s, _ := value.(string)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return validation.NewError("config.port_invalid", "must be a port number between 1 and 65535")
	}
	return nil
}

func isLanguageTag(value any) error {
	s, _ := value.(string)
	if _, err := language.Parse(s); err != nil {
		return validation.NewError("config.locale_invalid", "must be a BCP 47 language tag")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
