package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth" validate:"required"`
	Storage    StorageConfig    `mapstructure:"storage" validate:"required"`
	Generation GenerationConfig `mapstructure:"generation"`
	Providers  ProvidersConfig  `mapstructure:"providers"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains the admin gate settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	// DefaultAdminPassword seeds the settings table when no password hash exists yet.
	DefaultAdminPassword string `mapstructure:"default_admin_password" validate:"required,min=4"`
}

// StorageConfig selects where uploaded PDFs live.
type StorageConfig struct {
	Backend     string `mapstructure:"backend" validate:"required,oneof=local gcs"`
	LocalDir    string `mapstructure:"local_dir" validate:"required_if=Backend local"`
	GCSBucket   string `mapstructure:"gcs_bucket" validate:"required_if=Backend gcs"`
	MaxUploadMB int    `mapstructure:"max_upload_mb" validate:"gt=0"`
}

// GenerationConfig tunes the generation pipeline.
type GenerationConfig struct {
	// MaxPageSpan caps endPage-startPage+1 at the API boundary. Zero disables the cap.
	MaxPageSpan int `mapstructure:"max_page_span" validate:"gte=0"`
	// ImageRequestsPerMinute paces the sequential per-panel image calls. Zero disables pacing.
	ImageRequestsPerMinute int `mapstructure:"image_requests_per_minute" validate:"gte=0"`
}

// ProvidersConfig holds optional vendor endpoint overrides.
type ProvidersConfig struct {
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`
	GroqBaseURL   string `mapstructure:"groq_base_url" validate:"required,url"`
	GeminiBaseURL string `mapstructure:"gemini_base_url" validate:"omitempty,url"`
	TTSEndpoint   string `mapstructure:"tts_endpoint" validate:"omitempty,url"`
}
