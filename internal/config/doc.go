// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to assembly sizing and logging settings while keeping
// configuration details separate from the domain model.
package config
