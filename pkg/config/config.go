package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/logging"
	"github.com/arthur-debert/optset/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "OPTSET_"

// Conflict policies
const (
	OnConflictPrompt = "prompt"
	OnConflictReset  = "reset"
	OnConflictKeep   = "keep"
)

// Output formats
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the resolved application configuration
type Config struct {
	Schema     string `koanf:"schema"`
	File       string `koanf:"file"`
	OnConflict string `koanf:"on_conflict"`
	Format     string `koanf:"format"`
}

// Defaults returns the built-in configuration layer
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"schema":      paths.SchemaFile(),
		"file":        paths.SettingsFile(),
		"on_conflict": OnConflictPrompt,
		"format":      FormatAuto,
	}
}

// Load reads the configuration file from the config directory
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom layers defaults, the TOML file at path (if present) and the
// environment, then validates the result.
func LoadFrom(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail(errors.DetailPath, path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config file %s", path).
			WithDetail(errors.DetailPath, path)
	}

	// OPTSET_ON_CONFLICT -> on_conflict. Directory overrides are not config keys.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		switch key {
		case "config_dir", "state_dir":
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Schema = paths.ExpandHome(cfg.Schema)
	cfg.File = paths.ExpandHome(cfg.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("schema", cfg.Schema).
		Str("file", cfg.File).
		Str("on_conflict", cfg.OnConflict).
		Str("format", cfg.Format).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks the enumerated keys
func (c *Config) Validate() error {
	switch c.OnConflict {
	case OnConflictPrompt, OnConflictReset, OnConflictKeep:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"on_conflict must be one of prompt, reset or keep, not %q", c.OnConflict).
			WithDetail(errors.DetailValue, c.OnConflict)
	}

	switch c.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"format must be one of auto, term, text or json, not %q", c.Format).
			WithDetail(errors.DetailValue, c.Format)
	}

	return nil
}
