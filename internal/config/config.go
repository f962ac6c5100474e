// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 服務啟動所需的環境變數
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	RedisAddr     string `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret    string `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiresIn string `env:"JWT_EXPIRES_IN" envDefault:"24h"`

	Port   int    `env:"PORT" envDefault:"3000"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Debug  bool   `env:"DEBUG" envDefault:"false"`

	tokenTTL time.Duration
}

// Load 解析環境變數並驗證 JWT_EXPIRES_IN
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	ttl, err := time.ParseDuration(cfg.JWTExpiresIn)
	if err != nil {
		return nil, fmt.Errorf("parse JWT_EXPIRES_IN: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %q", cfg.JWTExpiresIn)
	}
	cfg.tokenTTL = ttl
	return cfg, nil
}

// TokenTTL access token 有效時間
func (c *Config) TokenTTL() time.Duration {
	return c.tokenTTL
}

// Addr HTTP 監聽位址
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
