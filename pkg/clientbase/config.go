package clientbase

import (
	lconfig "github.com/Puiching-Memory/LMT4SwanLab/pkg/config"
)

type Config struct {
	UserAgent string `env:"CLIENT_HTTP_USER_AGENT" envDefault:"LMT4SwanLab"`
}

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
