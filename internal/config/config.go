package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Record backends.
const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	Records  RecordsConfig
	Database DatabaseConfig
	LLM      LLMConfig
	HTTP     HTTPConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
	// CurrentUserID owns saved jobs and saved candidates until auth lands.
	CurrentUserID int64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// RecordsConfig selects and configures the record backend
type RecordsConfig struct {
	Backend    string // remote or local
	BaseURL    string
	ProjectID  string
	PublicKey  string
	Timeout    time.Duration
	RetryCount int
}

// DatabaseConfig holds the local store's Postgres settings
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
	LogLevel     string // silent, error, warn, info
}

// LLMConfig holds the job posting extractor settings
type LLMConfig struct {
	APIKey string
	Model  string
}

// HTTPConfig holds HTTP server settings
type HTTPConfig struct {
	CORSAllowOrigins []string
}

// Load reads configuration.
// Priority (highest to lowest):
// 1. Environment variables with JOBBOARD_ prefix (e.g., JOBBOARD_RECORDS_PUBLIC_KEY)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("JOBBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The extractor predates the prefix.
	_ = v.BindEnv("llm.api_key", "JOBBOARD_LLM_API_KEY", "GEMINI_API_KEY")

	cfg := &Config{
		App: AppConfig{
			Name:          v.GetString("app.name"),
			Env:           v.GetString("app.env"),
			Port:          v.GetString("app.port"),
			CurrentUserID: v.GetInt64("app.current_user_id"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Records: RecordsConfig{
			Backend:    strings.ToLower(v.GetString("records.backend")),
			BaseURL:    v.GetString("records.base_url"),
			ProjectID:  v.GetString("records.project_id"),
			PublicKey:  v.GetString("records.public_key"),
			Timeout:    v.GetDuration("records.timeout"),
			RetryCount: v.GetInt("records.retry_count"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("database.host"),
			Port:         v.GetInt("database.port"),
			User:         v.GetString("database.user"),
			Password:     v.GetString("database.password"),
			DBName:       v.GetString("database.dbname"),
			SSLMode:      v.GetString("database.sslmode"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
			AutoMigrate:  v.GetBool("database.auto_migrate"),
			LogLevel:     v.GetString("database.log_level"),
		},
		LLM: LLMConfig{
			APIKey: v.GetString("llm.api_key"),
			Model:  v.GetString("llm.model"),
		},
		HTTP: HTTPConfig{
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "jobboard")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.current_user_id", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("records.backend", BackendRemote)
	v.SetDefault("records.base_url", "")
	v.SetDefault("records.project_id", "")
	v.SetDefault("records.public_key", "")
	v.SetDefault("records.timeout", 20*time.Second)
	v.SetDefault("records.retry_count", 0)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "jobboard")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("llm.model", "gemini-2.5-flash")

	v.SetDefault("http.cors_allow_origins", []string{"*"})
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	switch c.Records.Backend {
	case BackendRemote:
		if c.Records.BaseURL == "" {
			return fmt.Errorf("records.base_url is required for the %s backend", BackendRemote)
		}
		if c.Records.ProjectID == "" || c.Records.PublicKey == "" {
			return fmt.Errorf("records.project_id and records.public_key are required for the %s backend", BackendRemote)
		}
	case BackendLocal:
	default:
		return fmt.Errorf("unknown records.backend %q (want %s or %s)", c.Records.Backend, BackendRemote, BackendLocal)
	}
	if c.App.CurrentUserID <= 0 {
		return fmt.Errorf("app.current_user_id must be positive")
	}
	return nil
}

// IsProduction reports whether the app runs in production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
