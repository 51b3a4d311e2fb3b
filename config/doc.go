// Package config loads YAML table definitions and seed rows for the demo
// binary.
package config
