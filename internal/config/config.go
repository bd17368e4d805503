package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the platform. Values come from an
// optional config file with environment override (prefix BETSIM_).
type Config struct {
	Env         string `mapstructure:"env"`
	HTTPPort    string `mapstructure:"http_port"`
	MetricsPort string `mapstructure:"metrics_port"`

	DBPath    string `mapstructure:"db_path"`
	RedisAddr string `mapstructure:"redis_addr"`

	StartingBalance float64       `mapstructure:"starting_balance"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`

	SettlementInterval time.Duration `mapstructure:"settlement_interval"`
	StandingsInterval  time.Duration `mapstructure:"standings_interval"`
	RegenerateInterval time.Duration `mapstructure:"regenerate_interval"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("BETSIM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http_port", "3000")
	v.SetDefault("metrics_port", "9100")

	v.SetDefault("db_path", "betsim.sqlite")
	v.SetDefault("redis_addr", "")

	v.SetDefault("starting_balance", 1000.0)
	v.SetDefault("session_ttl", "24h")

	// Scheduling intervals are part of the observable contract.
	v.SetDefault("settlement_interval", "1m")
	v.SetDefault("standings_interval", "5m")
	v.SetDefault("regenerate_interval", "10m")
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("starting_balance must not be negative")
	}
	for name, d := range map[string]time.Duration{
		"settlement_interval": c.SettlementInterval,
		"standings_interval":  c.StandingsInterval,
		"regenerate_interval": c.RegenerateInterval,
	} {
		if d < time.Second {
			return fmt.Errorf("%s must be at least 1s", name)
		}
	}
	return nil
}
