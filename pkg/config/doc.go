// Package config loads typed configuration structs from environment
// variables using caarlos0/env tags, with optional .env file support via
// godotenv.
//
// Each configuration type is parsed once per process and cached; Load returns
// the cached copy on subsequent calls. MustLoad panics on failure and is meant
// for configuration without which the application cannot start.
package config
