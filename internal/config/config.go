package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Rating sources understood by the review mapper.
const (
	RatingFromText          = "text"
	RatingFromTextualRating = "textualRating"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port" validate:"required,numeric"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
	HTTPTimeout     time.Duration `json:"http_timeout" validate:"gt=0"`
	AllowOrigins    string        `json:"allow_origins" validate:"required"`

	// Google Fact Check Tools
	FactCheckAPIKey       string        `json:"-"`
	FactCheckBaseURL      string        `json:"fact_check_base_url" validate:"required,url"`
	FactCheckTimeout      time.Duration `json:"fact_check_timeout" validate:"gt=0"`
	FactCheckLanguageCode string        `json:"fact_check_language_code"`
	FactCheckPageSize     int           `json:"fact_check_page_size" validate:"gte=0"`
	RatingSource          string        `json:"rating_source" validate:"oneof=text textualRating"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFile   string `json:"log_file"`
	LogPretty bool   `json:"log_pretty"`
}

// Load reads configuration from the environment (and .env, if present) and
// validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	env := getEnv("APP_ENV", "development")
	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		Env:             env,
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),
		AllowOrigins:    getEnv("CORS_ALLOW_ORIGINS", "*"),

		FactCheckAPIKey:       getEnv("GOOGLE_FACT_CHECK_API_KEY", ""),
		FactCheckBaseURL:      strings.TrimRight(getEnv("FACT_CHECK_BASE_URL", "https://factchecktools.googleapis.com/v1alpha1"), "/"),
		FactCheckTimeout:      getEnvAsDuration("FACT_CHECK_TIMEOUT", 10*time.Second),
		FactCheckLanguageCode: getEnv("FACT_CHECK_LANGUAGE_CODE", ""),
		FactCheckPageSize:     getEnvAsInt("FACT_CHECK_PAGE_SIZE", 0),
		RatingSource:          getEnv("FACT_CHECK_RATING_SOURCE", RatingFromText),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("LOG_FILE", ""),
		LogPretty: getEnvAsBool("LOG_PRETTY", env == "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
