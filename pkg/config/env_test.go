package lconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type serviceConfig struct {
	Host     string        `env:"SERVICE_HOST" envDefault:"https://api.example.com"`
	ApiKey   string        `env:"SERVICE_API_KEY"`
	Timeout  time.Duration `env:"SERVICE_TIMEOUT" envDefault:"10s"`
	PageSize int           `env:"SERVICE_PAGE_SIZE"`
	Verbose  bool          `env:"SERVICE_VERBOSE"`
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_DIR", "")
	t.Setenv("SERVICE_API_KEY", "abc123")
	t.Setenv("SERVICE_PAGE_SIZE", "50")
	t.Setenv("SERVICE_VERBOSE", "true")

	var cfg serviceConfig
	err := Parse(&cfg)
	assert.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.Host)
	assert.Equal(t, "abc123", cfg.ApiKey)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 50, cfg.PageSize)
	assert.True(t, cfg.Verbose)
}

func TestParseConfigDir(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "SERVICE_API_KEY"), []byte("from-file\n"), 0600)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "SERVICE_PAGE_SIZE"), []byte("25"), 0600)
	assert.NoError(t, err)

	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("SERVICE_API_KEY", "from-env")

	var cfg serviceConfig
	err = Parse(&cfg)
	assert.NoError(t, err)
	// Real environment variables win over files.
	assert.Equal(t, "from-env", cfg.ApiKey)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestParseConfigDirTrimsFileContents(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "SERVICE_API_KEY"), []byte("  padded \n"), 0600)
	assert.NoError(t, err)

	t.Setenv("CONFIG_DIR", dir)

	var cfg serviceConfig
	err = Parse(&cfg)
	assert.NoError(t, err)
	assert.Equal(t, "padded", cfg.ApiKey)
}

func TestParseConfigDirRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "SERVICE_API_KEY"), []byte("one"), 0600)
	assert.NoError(t, err)
	err = os.Mkdir(filepath.Join(dir, "nested"), 0700)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "nested", "SERVICE_API_KEY"), []byte("two"), 0600)
	assert.NoError(t, err)

	t.Setenv("CONFIG_DIR", dir)

	var cfg serviceConfig
	err = Parse(&cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParseMissingConfigDir(t *testing.T) {
	t.Setenv("CONFIG_DIR", filepath.Join(t.TempDir(), "does-not-exist"))

	var cfg serviceConfig
	err := Parse(&cfg)
	assert.Error(t, err)
}
