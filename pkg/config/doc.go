// Package config handles configuration management for advent.
// It layers the embedded defaults, the user and project TOML files,
// ADVENT_* environment variables and command-line overrides.
package config
