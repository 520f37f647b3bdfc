package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del frontal web.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"3000"`
	BackendURL    string `env:"BACKEND_URL" envDefault:"http://localhost:5000"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev-only-secret"`
	SessionCookie string `env:"SESSION_COOKIE" envDefault:"vacation_front"`
	StateDir      string `env:"STATE_DIR" envDefault:".state"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LoginRatePerMinute int `env:"LOGIN_RATE_PER_MINUTE" envDefault:"10"`
	LoginRateBurst     int `env:"LOGIN_RATE_BURST" envDefault:"5"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
