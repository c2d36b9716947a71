package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/optset/pkg/filesystem"
	"github.com/arthur-debert/optset/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementations(t *testing.T) {
	impls := map[string]func(t *testing.T) (types.FS, string){
		"os": func(t *testing.T) (types.FS, string) {
			return filesystem.NewOS(), t.TempDir()
		},
		"memory": func(t *testing.T) (types.FS, string) {
			return filesystem.NewMemory(), "/work"
		},
	}

	for name, setup := range impls {
		t.Run(name, func(t *testing.T) {
			fsys, root := setup(t)
			dir := filepath.Join(root, "nested", "dir")
			path := filepath.Join(dir, "settings.json")

			require.NoError(t, fsys.MkdirAll(dir, 0755))
			require.NoError(t, fsys.WriteFile(path, []byte(`{"volume":5}`), 0644))

			data, err := fsys.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, `{"volume":5}`, string(data))

			// Writing nothing truncates
			require.NoError(t, fsys.WriteFile(path, nil, 0644))
			info, err := fsys.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, int64(0), info.Size())

			_, err = fsys.ReadFile(dir)
			assert.Error(t, err, "reading a directory should fail")

			_, err = fsys.Stat(filepath.Join(root, "missing.json"))
			assert.Error(t, err)
		})
	}
}
