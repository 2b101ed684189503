package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RAKH_SERVER_ADDRESS.
const EnvPrefix = "RAKH"

// Config holds the settings of the rakh-status server.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Prefix          string        `mapstructure:"prefix"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Prefix string `mapstructure:"prefix"`
}

var (
	ErrMissingAddress = errors.New("config: server.address is required")
	ErrInvalidLevel   = errors.New("config: unknown log level")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.prefix", "/v1")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.prefix", "rakh-status")
}

// Load reads configuration from defaults, an optional YAML file named by
// RAKH_CONFIG, and RAKH_* environment variables, in increasing precedence.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return ErrMissingAddress
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	return nil
}
