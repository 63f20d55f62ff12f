// Package config loads horizon-api configuration from an optional YAML
// file and the process environment.
package config
