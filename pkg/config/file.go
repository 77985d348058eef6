package lconfig

import (
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// LoadStaticYamlConfig unmarshals one yaml (or json) file into target.
func LoadStaticYamlConfig(filename string, filesystem afero.Fs, target interface{}) error {
	content, err := afero.ReadFile(filesystem, filename)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", filename)
	}
	return errors.WithStack(yaml.Unmarshal(content, target))
}
