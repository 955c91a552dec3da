// Package config defines the application configuration structure and
// loading logic. Configuration comes from environment variables (CATS_
// prefix) with an optional config.yaml fallback, and is validated before
// the application starts.
package config
