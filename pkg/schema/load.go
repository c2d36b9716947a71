package schema

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/filesystem"
	"github.com/arthur-debert/optset/pkg/types"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// parserFor returns the koanf parser for a schema file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unsupported schema file %s, use .toml, .yaml, .yml or .json", path).
			WithDetail(errors.DetailPath, path)
	}
}

// fsProvider is a koanf.Provider reading raw bytes through types.FS
type fsProvider struct {
	fs   types.FS
	path string
}

func (p fsProvider) ReadBytes() ([]byte, error) {
	return p.fs.ReadFile(p.path)
}

func (p fsProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("schema provider does not support this method")
}

// LoadFile reads a schema document from path on the OS filesystem
func LoadFile(path string) (types.Schema, error) {
	return Load(filesystem.NewOS(), path)
}

// Load reads a schema document from path on fsys
func Load(fsys types.FS, path string) (types.Schema, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	if _, err := fsys.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrFileNotFound, "no schema file at %s", path).
				WithDetail(errors.DetailPath, path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access schema file %s", path).
			WithDetail(errors.DetailPath, path)
	}

	k := koanf.New(".")
	if err := k.Load(fsProvider{fs: fsys, path: path}, parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse schema file %s", path).
			WithDetail(errors.DetailPath, path)
	}

	schema, err := ParseDocument(k.Raw())
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid schema file %s", path).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail(errors.DetailPath, path)
	}

	return schema, nil
}
