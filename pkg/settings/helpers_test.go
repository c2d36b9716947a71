package settings_test

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/optset/pkg/filesystem"
	"github.com/arthur-debert/optset/pkg/settings"
	"github.com/arthur-debert/optset/pkg/types"
	"github.com/stretchr/testify/require"
)

const testDir = "/config"

func volumeOptions() []types.Option {
	options := make([]types.Option, 0, 11)
	for i := 0; i <= 10; i++ {
		options = append(options, types.Plain(i))
	}
	return options
}

// testSchema covers plain, indirect and boolean settings
func testSchema() types.Schema {
	return types.Schema{
		"volume": {Default: 5, Options: volumeOptions()},
		"size": {Default: "large", Options: []types.Option{
			types.Indirect("large", "L"),
			types.Indirect("medium", "M"),
			types.Indirect("small", "S"),
		}},
		"toggle": {Default: true, Options: []types.Option{types.Plain(true), types.Plain(false)}},
	}
}

type recordingConfirmer struct {
	answer   bool
	err      error
	requests []types.ConfirmationRequest
}

func (r *recordingConfirmer) Confirm(req types.ConfirmationRequest) (bool, error) {
	r.requests = append(r.requests, req)
	return r.answer, r.err
}

// newDefinedStore returns a defined store on an in-memory filesystem
func newDefinedStore(t *testing.T, confirmer types.Confirmer) (*settings.Store, types.FS) {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(testDir, 0755))

	store := settings.New(settings.StoreOptions{FS: fsys, Confirmer: confirmer})
	require.NoError(t, store.Define(testSchema()))
	return store, fsys
}

func writeFile(t *testing.T, fsys types.FS, name, content string) string {
	t.Helper()
	path := filepath.Join(testDir, name)
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	return path
}

func readJSON(t *testing.T, fsys types.FS, path string) map[string]interface{} {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func fileSize(t *testing.T, fsys types.FS, path string) int64 {
	t.Helper()
	info, err := fsys.Stat(path)
	require.NoError(t, err)
	return info.Size()
}

// failingFS wraps an FS and fails selected operations
type failingFS struct {
	types.FS
	readErr  error
	writeErr error
}

func (f *failingFS) ReadFile(name string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.FS.ReadFile(name)
}

func (f *failingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.FS.WriteFile(name, data, perm)
}
