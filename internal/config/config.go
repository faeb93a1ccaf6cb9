package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Cache  Cache
	Rate   Rate
}

type Server struct {
	Port             string `validate:"required,numeric"`
	DevLog           bool
	RevalidateSecret string `validate:"required,min=16"`
	MetricsEnabled   bool
	MetricsToken     string
	LatencyEnabled   bool
}

type Cache struct {
	// RedisAddr empty means the in-process cache backend.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type Rate struct {
	Limit         int `validate:"min=1"`
	WindowSeconds int `validate:"min=1"`
}

// Load reads .env when present, then the environment. Missing or weak
// required values fail startup rather than running half-configured.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Server: Server{
			Port:             getenv("PORT", "8080"),
			DevLog:           getbool("DEV_LOG", false),
			RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),
			MetricsEnabled:   getbool("METRICS_ENABLED", false),
			MetricsToken:     os.Getenv("METRICS_TOKEN"),
			LatencyEnabled:   getbool("LATENCY_ENABLED", false),
		},
		Cache: Cache{
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getint("REDIS_DB", 0),
		},
		Rate: Rate{
			Limit:         getint("RATE_LIMIT", 30),
			WindowSeconds: getint("RATE_WINDOW", 60),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
