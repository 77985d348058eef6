package secret

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/config"
)

// Store resolves the SwanLab API key. Implementations are consulted on every
// login so that rotated credentials are picked up without a restart.
type Store interface {
	ApiKey() (string, error)
}

type StaticStore struct {
	key string
}

func NewStaticStore(key string) *StaticStore {
	return &StaticStore{key: key}
}

func (s *StaticStore) ApiKey() (string, error) {
	return s.key, nil
}

type FileStore struct {
	fs   afero.Fs
	path string
}

func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

func (s *FileStore) ApiKey() (string, error) {
	content, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read api key file %s", s.path)
	}
	key := strings.TrimSpace(string(content))
	if key == "" {
		return "", errors.Errorf("api key file %s is empty", s.path)
	}
	return key, nil
}

// Save writes the key, readable by the owning user only.
func (s *FileStore) Save(key string) error {
	if err := afero.WriteFile(s.fs, s.path, []byte(key), 0600); err != nil {
		return errors.Wrapf(err, "failed to write api key file %s", s.path)
	}
	return nil
}

// Delete removes the stored key. Deleting an absent key is not an error.
func (s *FileStore) Delete() error {
	err := s.fs.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete api key file %s", s.path)
	}
	return nil
}

func NewStoreFromConfig(cfg *config.Config) (Store, error) {
	if cfg.ApiKeyFile != "" {
		return NewFileStore(afero.NewOsFs(), cfg.ApiKeyFile), nil
	}
	if cfg.ApiKey != "" {
		return NewStaticStore(cfg.ApiKey), nil
	}
	return nil, errors.New("no api key configured, set SWANLAB_API_KEY or SWANLAB_API_KEY_FILE")
}
