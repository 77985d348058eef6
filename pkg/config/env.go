package lconfig

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
)

// Parse fills a config struct from the environment. When CONFIG_DIR is set,
// every file in that directory contributes one variable named after the
// file, with real environment variables taking precedence.
func Parse(v interface{}) error {
	opts := env.Options{}
	if dirPath := os.Getenv("CONFIG_DIR"); dirPath != "" {
		configDir, err := NewConfigDir(dirPath)
		if err != nil {
			return err
		}
		opts.Environment, err = configDir.EnvironmentMap()
		if err != nil {
			return err
		}
		for _, pair := range os.Environ() {
			name := strings.SplitN(pair, "=", 2)[0]
			opts.Environment[name] = os.Getenv(name)
		}
	}
	return errors.WithStack(env.Parse(v, opts))
}
