// Package config reads the runtime settings of the validation demo from
// GOFAC_* environment variables.
//
// Keys are mapped with "_" as the nesting separator:
//
//	GOFAC_VALIDATION_LIFETIME -> validation.lifetime -> Config.Validation.Lifetime
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	gofac "github.com/Ngone6325/gofac-validation"
	"github.com/Ngone6325/gofac-validation/validation"
)

// Prefix selects the environment variables read by Load.
const Prefix = "GOFAC_"

// Config is the root configuration object.
type Config struct {
	Validation ValidationConfig `koanf:"validation"`
	Log        LogConfig        `koanf:"log"`
}

// ValidationConfig selects how validators are registered. Empty values keep
// the defaults of validation.NewConfiguration.
type ValidationConfig struct {
	Lifetime string `koanf:"lifetime" validate:"omitempty,oneof=singleton scoped transient"`
	Mode     string `koanf:"mode" validate:"omitempty,oneof=single collection"`
}

// LogConfig controls the logger built by internal/logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `koanf:"pretty"`
}

// Load reads Prefix-ed environment variables, unmarshals and validates them.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(Prefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, Prefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Validation.Lifetime = strings.ToLower(strings.TrimSpace(cfg.Validation.Lifetime))
	cfg.Validation.Mode = strings.ToLower(strings.TrimSpace(cfg.Validation.Mode))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Apply copies the configured lifetime and mode onto c and returns it.
// A nil c starts from validation.NewConfiguration.
func (v ValidationConfig) Apply(c *validation.Configuration) (*validation.Configuration, error) {
	if c == nil {
		c = validation.NewConfiguration()
	}
	if v.Lifetime != "" {
		scope, err := gofac.ParseLifetimeScope(v.Lifetime)
		if err != nil {
			return nil, err
		}
		c.WithLifetime(scope)
	}
	switch v.Mode {
	case "":
	case "single":
		c.RegisterAsSingleValidator()
	case "collection":
		c.RegisterAsValidatorCollection()
	default:
		return nil, fmt.Errorf("unknown validation mode %q", v.Mode)
	}
	return c, nil
}
