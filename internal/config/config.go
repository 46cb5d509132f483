package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds the configuration for the QuoteSpark server.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// SessionKey is the key used to encrypt session cookies.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// Seed controls whether the store is preloaded with the default
	// categories, quotes and admin account.
	Seed bool `yaml:"seed" mapstructure:"seed"`
	// PageSize is the default page size for quote listings.
	PageSize int `yaml:"page_size" mapstructure:"page_size"`
	// DailyRefreshCron is the cron schedule for rotating the daily quote.
	DailyRefreshCron string `yaml:"daily_refresh_cron" mapstructure:"daily_refresh_cron"`
	// OpenAI holds the completion provider configuration.
	OpenAI *OpenAIConfig `yaml:"openai" mapstructure:"openai"`
}

// OpenAIConfig holds the configuration for the completion provider used for
// quote generation.
type OpenAIConfig struct {
	// APIKey is the server-wide provider credential. Users may override it
	// with a personal key in their AI settings.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL is the provider endpoint, for OpenAI-compatible providers.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Model is the default completion model.
	Model string `yaml:"model" mapstructure:"model"`
	// TimeoutSeconds bounds a single completion call.
	TimeoutSeconds int `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// Load reads the configuration from the specified path. If path is empty,
// default search paths are used. A missing config file is fine, defaults and
// environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("QUOTESPARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.quotespark")
		v.AddConfigPath("/etc/quotespark")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	if c.SessionKey == "" {
		c.SessionKey = uuid.NewString()
		log.Warn("no session_key configured, generated a random one; sessions will not survive restarts")
	}

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:5000")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_max_age", 86400) // 24 hours
	v.SetDefault("seed", true)
	v.SetDefault("page_size", 10)
	v.SetDefault("daily_refresh_cron", "0 0 * * *") // midnight

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o")
	v.SetDefault("openai.timeout_seconds", 30)
}

func validateConfig(c *Config) error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive")
	}
	if c.OpenAI == nil {
		return fmt.Errorf("missing openai config")
	}
	return nil
}
