package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Server         ServerConfig
	PredictService PredictServiceConfig
	Session        SessionConfig
	Log            LogConfig
}

type ServerConfig struct {
	Port      string `env:"SERVER_PORT" envDefault:"3000"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./public"`
}

type PredictServiceConfig struct {
	Host string `env:"PREDICT_SERVICE_HOST" envDefault:"localhost"`
	Port string `env:"PREDICT_SERVICE_PORT" envDefault:"5000"`
	Path string `env:"PREDICT_SERVICE_PATH" envDefault:"/predict"`
	// Zero disables the client timeout.
	Timeout time.Duration `env:"PREDICT_SERVICE_TIMEOUT" envDefault:"0s"`
}

func (c PredictServiceConfig) URL() string {
	return fmt.Sprintf("http://%s:%s%s", c.Host, c.Port, c.Path)
}

type SessionConfig struct {
	Expiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"24h"`
}

type LogConfig struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"console"`
	Service string `env:"SERVICE_NAME" envDefault:"car-price-web"`
}

func GetConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse .env file: %w", err)
	}

	return config, nil
}
