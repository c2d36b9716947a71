package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/filesystem"
	"github.com/arthur-debert/optset/pkg/settings"
	"github.com/arthur-debert/optset/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFile_Preconditions(t *testing.T) {
	store, fsys := newDefinedStore(t, nil)
	require.NoError(t, fsys.MkdirAll(filepath.Join(testDir, "dir.json"), 0755))
	writeFile(t, fsys, "settings.toml", "")

	tests := []struct {
		name     string
		path     string
		wantCode errors.ErrorCode
	}{
		{"missing file", filepath.Join(testDir, "missing.json"), errors.ErrFileNotFound},
		{"directory", filepath.Join(testDir, "dir.json"), errors.ErrInvalidInput},
		{"wrong extension", filepath.Join(testDir, "settings.toml"), errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.BindFile(tt.path)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, tt.path, errors.GetErrorDetail(err, errors.DetailPath))
			assert.Equal(t, settings.StateDefined, store.State())
			assert.Empty(t, store.Path())
		})
	}
}

func TestBindFile_ExtensionIsCaseInsensitive(t *testing.T) {
	store, fsys := newDefinedStore(t, nil)
	path := writeFile(t, fsys, "SETTINGS.JSON", "")

	require.NoError(t, store.BindFile(path))
	assert.Equal(t, settings.StateFileBound, store.State())
	assert.Equal(t, path, store.Path())
}

func TestBindFile_EmptyFileKeepsDefaults(t *testing.T) {
	for _, content := range []string{"", "  \n"} {
		store, fsys := newDefinedStore(t, nil)
		path := writeFile(t, fsys, "settings.json", content)

		require.NoError(t, store.BindFile(path))

		got, err := store.GetLiteral("volume")
		require.NoError(t, err)
		assert.Equal(t, 5, got)
		assert.Equal(t, int64(len(content)), fileSize(t, fsys, path), "binding does not write")
	}
}

func TestSet_WritesThroughStorageKeys(t *testing.T) {
	store, fsys := newDefinedStore(t, nil)
	path := writeFile(t, fsys, "settings.json", "")
	require.NoError(t, store.BindFile(path))

	require.NoError(t, store.Set("size", "small"))

	assert.Equal(t, map[string]interface{}{
		"size":   "small",
		"toggle": true,
		"volume": float64(5),
	}, readJSON(t, fsys, path))

	require.NoError(t, store.Set("volume", 9))
	assert.Equal(t, float64(9), readJSON(t, fsys, path)["volume"])
}

func TestSet_InvalidValueDoesNotWrite(t *testing.T) {
	store, fsys := newDefinedStore(t, nil)
	path := writeFile(t, fsys, "settings.json", "")
	require.NoError(t, store.BindFile(path))

	assert.Error(t, store.Set("volume", 42))
	assert.Equal(t, int64(0), fileSize(t, fsys, path))
}

func TestSet_WriteThroughFailureKeepsValue(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/config/settings.json", nil, 0644))

	fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(base))
	store := settings.New(settings.StoreOptions{FS: fsys})
	require.NoError(t, store.Define(testSchema()))
	require.NoError(t, store.BindFile("/config/settings.json"))

	err := store.Set("volume", 8)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPersistenceIO), "got %v", err)
	assert.Equal(t, "/config/settings.json", errors.GetErrorDetail(err, errors.DetailPath))

	got, getErr := store.GetLiteral("volume")
	require.NoError(t, getErr)
	assert.Equal(t, 8, got, "in-memory value is not rolled back")
}

func TestPersist_UnencodableKey(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(testDir, 0755))
	path := writeFile(t, fsys, "settings.json", "")

	store := settings.New(settings.StoreOptions{FS: fsys})
	require.NoError(t, store.Define(types.Schema{
		"ch": {Default: "a", Options: []types.Option{types.Plain("a"), types.Plain(make(chan int))}},
	}))
	require.NoError(t, store.BindFile(path))

	opts, err := store.Options("ch")
	require.NoError(t, err)

	err = store.Set("ch", opts[1].Key())
	assert.True(t, errors.IsErrorCode(err, errors.ErrPersistenceIO), "got %v", err)
}

func TestReset(t *testing.T) {
	store, fsys := newDefinedStore(t, nil)
	path := writeFile(t, fsys, "settings.json", "")
	require.NoError(t, store.BindFile(path))
	require.NoError(t, store.Set("volume", 2))
	require.NotZero(t, fileSize(t, fsys, path))

	require.NoError(t, store.Reset())

	assert.Equal(t, int64(0), fileSize(t, fsys, path))
	got, err := store.GetLiteral("volume")
	require.NoError(t, err)
	assert.Equal(t, 2, got, "reset leaves memory alone")
}

func TestResetAndPersist_RequireBoundFile(t *testing.T) {
	store, _ := newDefinedStore(t, nil)

	assert.True(t, errors.IsErrorCode(store.Reset(), errors.ErrNotFileBound))
	assert.True(t, errors.IsErrorCode(store.Persist(), errors.ErrNotFileBound))
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	values := map[string]interface{}{
		"volume": 3,
		"size":   "medium",
		"toggle": false,
	}

	first := settings.New(settings.StoreOptions{})
	require.NoError(t, first.Define(testSchema()))
	require.NoError(t, first.BindFile(path))
	for name, value := range values {
		require.NoError(t, first.Set(name, value))
	}

	second := settings.New(settings.StoreOptions{})
	require.NoError(t, second.Define(testSchema()))
	require.NoError(t, second.BindFile(path))

	for name, value := range values {
		got, err := second.GetLiteral(name)
		require.NoError(t, err)
		assert.Equal(t, value, got, "setting %s", name)
	}

	got, err := second.Get("size")
	require.NoError(t, err)
	assert.Equal(t, "M", got)
}
