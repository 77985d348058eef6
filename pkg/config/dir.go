package lconfig

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ConfigDir exposes a directory of single-value files, one variable per
// file, the way mounted secrets and config maps arrive.
type ConfigDir struct {
	fs afero.Fs
}

func NewConfigDir(dirPath string) (*ConfigDir, error) {
	if dirPath == "" {
		return nil, errors.New("empty config dir path")
	}
	configDir := &ConfigDir{
		fs: afero.NewBasePathFs(afero.NewOsFs(), dirPath),
	}

	stat, err := configDir.fs.Stat(".")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !stat.IsDir() {
		return nil, errors.Errorf("config dir path %s is not a directory", dirPath)
	}
	return configDir, nil
}

// EnvironmentMap reads every file under the directory into a variable named
// after the file, trimming surrounding whitespace. Two files with the same
// base name are rejected rather than silently shadowed.
func (config *ConfigDir) EnvironmentMap() (map[string]string, error) {
	envMap := make(map[string]string)

	err := afero.Walk(config.fs, ".", func(path string, fileInfo fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fileInfo.IsDir() {
			return nil
		}
		name := fileInfo.Name()
		if _, alreadyExists := envMap[name]; alreadyExists {
			return errors.Errorf("duplicate configuration value %s", name)
		}
		contents, err := afero.ReadFile(config.fs, path)
		if err != nil {
			return err
		}
		envMap[name] = strings.TrimSpace(string(contents))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return envMap, nil
}
