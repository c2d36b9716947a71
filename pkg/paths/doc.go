// Package paths provides centralized path handling for optset.
//
// It resolves the XDG Base Directory locations optset uses by default:
//
//   - Config: $XDG_CONFIG_HOME/optset (config.toml, schema.toml, settings.json)
//   - State: $XDG_STATE_HOME/optset (optset.log)
//
// # Environment Variables
//
//   - OPTSET_CONFIG_DIR: Override the config directory
//   - OPTSET_STATE_DIR: Override the state directory
//
// Paths given by the user are expanded with ExpandHome before use.
package paths
