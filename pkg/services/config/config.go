package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/de-tools/retention-audit/pkg/services/audit"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "AUDIT"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Benchmarks BenchmarksConfig `mapstructure:"benchmarks"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type BenchmarksConfig struct {
	// Path to an INI benchmark table; empty means built-in benchmarks
	Path string `mapstructure:"path"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Load reads configuration from path (any format viper understands) and from
// AUDIT_* environment variables, e.g. AUDIT_SERVER_PORT. An empty path reads
// the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("benchmarks.path", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ZerologLevel parses the configured level, defaulting to info
func (l LogConfig) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// AuditSettings returns the default calculator settings with the configured
// benchmark table, if any.
func (c *Config) AuditSettings() (audit.Settings, error) {
	settings := audit.DefaultSettings()
	if c.Benchmarks.Path == "" {
		return settings, nil
	}
	table, err := LoadBenchmarks(c.Benchmarks.Path)
	if err != nil {
		return settings, err
	}
	settings.Benchmarks = table
	return settings, nil
}
