// Package config turns process arguments and environment into a search Config
// and resolves ambient runtime Settings from multiple sources (YAML file,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults.
package config
