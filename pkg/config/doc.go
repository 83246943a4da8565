// Package config handles configuration management for sweeps.
// It layers the embedded defaults, the user's config file under the XDG
// config home, an explicit --config file (TOML or YAML), and SWEEPS_
// environment variables, in that order.
package config
