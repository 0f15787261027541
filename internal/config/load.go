package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces every environment variable, e.g. NANI_SERVER_PORT.
const envPrefix = "NANI"

// defaults lists every key with its default value. Keys without a sensible
// default are listed with a zero value so viper binds them to the environment.
var defaults = map[string]any{
	"server.port":                          8080,
	"server.log_level":                     "info",
	"database.url":                         "",
	"auth.jwt_secret":                      "",
	"auth.token_lifetime_minutes":          60,
	"auth.default_admin_password":          "",
	"storage.backend":                      "local",
	"storage.local_dir":                    "./data/uploads",
	"storage.gcs_bucket":                   "",
	"storage.max_upload_mb":                100,
	"generation.max_page_span":             0,
	"generation.image_requests_per_minute": 0,
	"providers.openai_base_url":            "",
	"providers.groq_base_url":              "https://api.groq.com/openai/v1/",
	"providers.gemini_base_url":            "",
	"providers.tts_endpoint":               "",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
