// Package config loads runtime configuration from the environment. Values
// here are defaults and operator overrides; command-line flags in cmd take
// precedence over both.
package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for a reconciliation run.
type Config struct {
	InputPath             string  `mapstructure:"RECONCILER_INPUT"`
	OutputPath            string  `mapstructure:"RECONCILER_OUTPUT"`
	ReportFormat          string  `mapstructure:"RECONCILER_REPORT_FORMAT"`
	PortalURL             string  `mapstructure:"RECONCILER_PORTAL_URL"`
	PortalMode            string  `mapstructure:"RECONCILER_PORTAL_MODE"`
	LookupTimeoutSeconds  int     `mapstructure:"RECONCILER_LOOKUP_TIMEOUT_SECONDS"`
	FixtureSeed           int64   `mapstructure:"RECONCILER_FIXTURE_SEED"`
	FixtureDivergenceRate float64 `mapstructure:"RECONCILER_FIXTURE_DIVERGENCE_RATE"`
}

// LoadConfig reads configuration from environment variables, applying
// defaults for everything not set.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("RECONCILER_INPUT", "data/sales.csv")
	viper.SetDefault("RECONCILER_OUTPUT", "output/reconciliation_report.csv")
	viper.SetDefault("RECONCILER_REPORT_FORMAT", "csv")
	viper.SetDefault("RECONCILER_PORTAL_URL", "http://localhost:8080")
	viper.SetDefault("RECONCILER_PORTAL_MODE", "http")
	viper.SetDefault("RECONCILER_LOOKUP_TIMEOUT_SECONDS", 5)
	viper.SetDefault("RECONCILER_FIXTURE_SEED", 1)
	viper.SetDefault("RECONCILER_FIXTURE_DIVERGENCE_RATE", 0.10)
	viper.AutomaticEnv()

	_ = viper.BindEnv("RECONCILER_INPUT")
	_ = viper.BindEnv("RECONCILER_OUTPUT")
	_ = viper.BindEnv("RECONCILER_REPORT_FORMAT")
	_ = viper.BindEnv("RECONCILER_PORTAL_URL")
	_ = viper.BindEnv("RECONCILER_PORTAL_MODE")
	_ = viper.BindEnv("RECONCILER_LOOKUP_TIMEOUT_SECONDS")
	_ = viper.BindEnv("RECONCILER_FIXTURE_SEED")
	_ = viper.BindEnv("RECONCILER_FIXTURE_DIVERGENCE_RATE")

	err = viper.Unmarshal(&config)
	return
}
