package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	appenv "github.com/garrettladley/wellscore/internal/env"
	"github.com/garrettladley/wellscore/internal/wellness"
)

// Server is the configuration of cmd/server, read from the environment.
type Server struct {
	Port        string             `env:"PORT" envDefault:"8080"`
	Env         appenv.Environment `env:"ENV" envDefault:"development"`
	Database    Database           `envPrefix:"DATABASE_"`
	Redis       Redis              `envPrefix:"REDIS_"`
	RateLimit   RateLimit          `envPrefix:"RATE_"`
	CORS        CORS               `envPrefix:"CORS_"`
	Weights     wellness.Weights   `envPrefix:"WEIGHT_"`
	WeightsFile string             `env:"WEIGHTS_FILE"`
}

type Database struct {
	URL string `env:"URL,required,notEmpty"`
}

// Redis is optional; rate limits fall back to memory when URL is empty.
type Redis struct {
	URL      string `env:"URL"`
	PoolSize int    `env:"POOL_SIZE"`
}

type RateLimit struct {
	Limit  float64       `env:"LIMIT" envDefault:"10"`
	Burst  int           `env:"BURST" envDefault:"20"`
	Window time.Duration `env:"WINDOW" envDefault:"1s"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// CLI is the configuration of cmd/wellscore. Every field has a matching
// flag that takes precedence.
type CLI struct {
	Server      string `env:"SERVER"`
	APIKey      string `env:"API_KEY"`
	WeightsFile string `env:"WEIGHTS_FILE"`
	DBPath      string `env:"DB"`
}

func ReadServer() (Server, error) {
	return env.ParseAs[Server]()
}

// ReadDatabase reads only DATABASE_*, for tools that need nothing else.
func ReadDatabase() (Database, error) {
	return env.ParseAsWithOptions[Database](env.Options{Prefix: "DATABASE_"})
}

func ReadCLI() (CLI, error) {
	return env.ParseAsWithOptions[CLI](env.Options{Prefix: "WELLSCORE_"})
}
