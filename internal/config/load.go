package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/knesset/internal/domain"
	"github.com/phrazzld/knesset/internal/domain/assembly"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. KNESSET_ASSEMBLY_LAW_CAPACITY.
const EnvPrefix = "KNESSET"

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the file, which take
// precedence over defaults. An empty path skips the file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct-tag constraints of the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// setDefaults registers every key so that AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("assembly.law_capacity", assembly.DefaultLawCapacity)
	v.SetDefault("assembly.max_laws_per_member", assembly.DefaultMaxLawsPerMember)
	v.SetDefault("assembly.member_capacity", assembly.DefaultMemberCapacity)
	v.SetDefault("assembly.enthusiasm_threshold", domain.DefaultEnthusiasmThreshold)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
