package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port              string
	Env               string
	LogLevel          string
	MongoURI          string
	MongoDB           string
	JWTSecret         string
	TokenTTL          time.Duration
	CacheEnabled      bool
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JobsEnabled       bool
	MigrationsEnabled bool
	SyncSchedule      string
	SeedDirectory     bool
	PaymentDelay      time.Duration
	WizardSessionTTL  time.Duration
	CORSOrigins       []string
}

/*
* Load the .env file if present and read the environment
* Missing .env is not an error, the process env is used as is
 */
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Port:              getEnv("PORT", "5000"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "clinic"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          getDuration("TOKEN_TTL", time.Hour),
		CacheEnabled:      getBool("CACHE_ENABLED", true),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getInt("REDIS_DB", 0),
		JobsEnabled:       getBool("JOBS_ENABLED", true),
		MigrationsEnabled: getBool("MIGRATIONS_ENABLED", true),
		SyncSchedule:      getEnv("SYNC_SCHEDULE", "*/30 * * * *"),
		SeedDirectory:     getBool("SEED_DIRECTORY", true),
		PaymentDelay:      getDuration("PAYMENT_DELAY", 2*time.Second),
		WizardSessionTTL:  getDuration("WIZARD_SESSION_TTL", 30*time.Minute),
		CORSOrigins:       getList("CORS_ORIGINS", []string{"*"}),
	}
}

// Validate reports the settings the server cannot start without.
func (c Config) Validate(mongoEnabled bool) error {
	if mongoEnabled && c.MongoURI == "" {
		return errors.New("MONGO_URI is not defined")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not defined")
	}
	if c.PaymentDelay < 0 {
		return errors.New("PAYMENT_DELAY must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid bool in env, using default")
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid int in env, using default")
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration in env, using default")
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
