package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret            string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes  int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	JWTRefreshTTLMinutes int    `env:"JWT_REFRESH_TTL_MINUTES" envDefault:"43200"`

	MinInputLength        int           `env:"MIN_INPUT_LENGTH" envDefault:"10"`
	GenerationDelay       time.Duration `env:"GENERATION_DELAY" envDefault:"1500ms"`
	GenerationFailureRate float64       `env:"GENERATION_FAILURE_RATE" envDefault:"0"`
	GenerationRateLimit   int           `env:"GENERATION_RATE_LIMIT" envDefault:"20"`
	GenerationRateWindow  time.Duration `env:"GENERATION_RATE_WINDOW" envDefault:"1m"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
