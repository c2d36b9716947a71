// Package config loads optset's own configuration, such as where the schema
// and the settings file live.
//
// Values are layered, later sources overriding earlier ones:
//   - built-in defaults
//   - config.toml in the config directory (OPTSET_CONFIG_DIR or
//     $XDG_CONFIG_HOME/optset)
//   - OPTSET_* environment variables (OPTSET_ON_CONFLICT=reset)
//
// Command line flags are applied on top by the cmd package.
package config
