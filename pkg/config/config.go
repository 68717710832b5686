// Package config loads service settings from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config gives read access to loaded settings.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
	GetAll() map[string]interface{}
}

type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// GetStringSlice also splits comma-separated strings, which is how list values
// arrive from environment variables.
func (c *viperConfig) GetStringSlice(key string) []string {
	raw := c.v.Get(key)
	if s, ok := raw.(string); ok {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return c.v.GetStringSlice(key)
}

func (c *viperConfig) IsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *viperConfig) GetAll() map[string]interface{} {
	return c.v.AllSettings()
}

const configDir = "configs"

// Option customizes Load.
type Option func(v *viper.Viper)

// WithDefault registers a fallback value for key.
func WithDefault(key string, value interface{}) Option {
	return func(v *viper.Viper) {
		v.SetDefault(key, value)
	}
}

// WithEnvAlias binds key to an extra, unprefixed environment variable.
func WithEnvAlias(key, env string) Option {
	return func(v *viper.Viper) {
		_ = v.BindEnv(key, strings.ToUpper(env))
	}
}

// Load reads configs/{APP_ENV}/{serviceName}.yaml, falling back to
// configs/example/{serviceName}.yaml. CONFIG_PATH overrides the directory.
// Environment variables prefixed with the upper-cased service name override
// file values (api: API_MONGODB_URI -> mongodb.uri). A missing file is not an
// error; defaults and environment still apply.
func Load(serviceName string, opts ...Option) (Config, error) {
	v := viper.New()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, opt := range opts {
		opt(v)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(configDir, env)
	}

	v.SetConfigName(serviceName)
	v.AddConfigPath(configPath)
	v.AddConfigPath(filepath.Join(configDir, "example"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
