package config

import "github.com/phrazzld/knesset/internal/domain/assembly"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Assembly AssemblyConfig `mapstructure:"assembly" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
}

// AssemblyConfig contains the sizing and support rules for new assemblies.
type AssemblyConfig struct {
	LawCapacity         int     `mapstructure:"law_capacity" validate:"gte=0"`
	MaxLawsPerMember    int     `mapstructure:"max_laws_per_member" validate:"gte=0"`
	MemberCapacity      int     `mapstructure:"member_capacity" validate:"gt=0"`
	EnthusiasmThreshold float64 `mapstructure:"enthusiasm_threshold"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// Params converts the configuration into assembly parameters.
func (c AssemblyConfig) Params() *assembly.Params {
	return &assembly.Params{
		LawCapacity:         c.LawCapacity,
		MemberCapacity:      c.MemberCapacity,
		MaxLawsPerMember:    c.MaxLawsPerMember,
		EnthusiasmThreshold: c.EnthusiasmThreshold,
	}
}
