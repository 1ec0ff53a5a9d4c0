// Package config loads, normalizes, and validates bckl configuration data.
//
// Configuration is TOML, resolved from an explicit --config path, then
// ~/.config/bckl/config.toml, then ./bckl.toml. Repository defaults fill
// anything the file leaves out, environment variables (BCKL_API_KEY,
// OPENAI_API_KEY, BCKL_MODEL, BCKL_LOG_LEVEL, optionally via a local .env)
// override the file, and user paths are tilde-expanded. A sample config is
// embedded for `bckl config init`.
package config
