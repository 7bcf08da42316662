// Package config loads and validates the TOML configuration for argus.
//
// Loading always starts from repository defaults, overlays the config file
// when one exists, then normalizes and validates the result, so callers only
// ever see a usable Config.
package config
