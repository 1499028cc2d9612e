// Package config handles configuration management for richconsole.
// It supports loading configuration from multiple sources including
// embedded defaults, TOML or YAML files, environment variables, and
// command-line flags.
package config
