package config

import (
	"time"

	"github.com/spf13/afero"

	lconfig "github.com/Puiching-Memory/LMT4SwanLab/pkg/config"
)

type Config struct {
	ApiHost      string        `env:"SWANLAB_API_HOST" envDefault:"https://api.swanlab.cn/api"`
	WebHost      string        `env:"SWANLAB_WEB_HOST" envDefault:"https://swanlab.cn"`
	ApiKey       string        `env:"SWANLAB_API_KEY" envDefault:""`
	ApiKeyFile   string        `env:"SWANLAB_API_KEY_FILE" envDefault:""`
	SettingsFile string        `env:"SWANLAB_SETTINGS_FILE" envDefault:""`
	CallTimeout  time.Duration `env:"TOOL_CALL_TIMEOUT" envDefault:"60s"`
}

// Settings is the optional on-disk counterpart of Config. Values present in
// the file take precedence over environment values.
type Settings struct {
	ApiHost string `json:"apiHost"`
	WebHost string `json:"webHost"`
}

func NewConfigFromEnv() (*Config, error) {
	return newConfigFromEnv(afero.NewOsFs())
}

func newConfigFromEnv(filesystem afero.Fs) (*Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SettingsFile != "" {
		var settings Settings
		if err := lconfig.LoadStaticYamlConfig(cfg.SettingsFile, filesystem, &settings); err != nil {
			return nil, err
		}
		if settings.ApiHost != "" {
			cfg.ApiHost = settings.ApiHost
		}
		if settings.WebHost != "" {
			cfg.WebHost = settings.WebHost
		}
	}

	return &cfg, nil
}
