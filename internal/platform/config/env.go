package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every avatarpick environment variable.
const EnvPrefix = "AVATARPICK_"

// ParseEnv loads configuration from prefixed environment variables.
//
// Struct tags name the variable without the prefix, so a field tagged
// `env:"WEB_HTTP_ADDR"` reads AVATARPICK_WEB_HTTP_ADDR.
func ParseEnv(target any) error {
	return ParseEnvWithPrefix(target, EnvPrefix)
}

// ParseEnvWithPrefix loads configuration using an explicit variable prefix.
func ParseEnvWithPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
