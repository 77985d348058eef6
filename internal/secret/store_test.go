package secret

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/config"
)

func TestStaticStore(t *testing.T) {
	store := NewStaticStore("abc123")
	key, err := store.ApiKey()
	assert.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestFileStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "/secrets/api-key", []byte("abc123\n"), 0600))

	store := NewFileStore(fs, "/secrets/api-key")
	key, err := store.ApiKey()
	assert.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestFileStorePicksUpRotation(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "/secrets/api-key", []byte("first"), 0600))

	store := NewFileStore(fs, "/secrets/api-key")
	key, err := store.ApiKey()
	assert.NoError(t, err)
	assert.Equal(t, "first", key)

	assert.NoError(t, afero.WriteFile(fs, "/secrets/api-key", []byte("second"), 0600))
	key, err = store.ApiKey()
	assert.NoError(t, err)
	assert.Equal(t, "second", key)
}

func TestFileStoreMissing(t *testing.T) {
	store := NewFileStore(afero.NewMemMapFs(), "/secrets/api-key")
	_, err := store.ApiKey()
	assert.Error(t, err)
}

func TestFileStoreSaveRoundtrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, "/secrets/api-key")

	assert.NoError(t, store.Save("abc123"))

	info, err := fs.Stat("/secrets/api-key")
	assert.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().String())

	key, err := store.ApiKey()
	assert.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestFileStoreDelete(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, "/secrets/api-key")

	assert.NoError(t, store.Save("abc123"))
	assert.NoError(t, store.Delete())

	_, err := store.ApiKey()
	assert.Error(t, err)

	// Deleting twice stays quiet
	assert.NoError(t, store.Delete())
}

func TestFileStoreEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "/secrets/api-key", []byte("  \n"), 0600))

	store := NewFileStore(fs, "/secrets/api-key")
	_, err := store.ApiKey()
	assert.Error(t, err)
}

func TestNewStoreFromConfig(t *testing.T) {
	store, err := NewStoreFromConfig(&config.Config{ApiKey: "abc"})
	assert.NoError(t, err)
	assert.IsType(t, &StaticStore{}, store)

	store, err = NewStoreFromConfig(&config.Config{ApiKeyFile: "/secrets/api-key"})
	assert.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	// File location wins when both are set
	store, err = NewStoreFromConfig(&config.Config{ApiKey: "abc", ApiKeyFile: "/secrets/api-key"})
	assert.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = NewStoreFromConfig(&config.Config{})
	assert.Error(t, err)
}
