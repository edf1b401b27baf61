package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Deployment environment tags.
const (
	EnvLocal       = "local"
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Config holds all application configuration.
type Config struct {
	Environment string         `yaml:"environment"`
	Server      ServerConfig   `yaml:"server"`
	Telegram    TelegramConfig `yaml:"telegram"`
	Webhooks    WebhooksConfig `yaml:"webhooks"`
	Logging     LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int    `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

// TelegramConfig holds the Bot API credential and target chat.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	GroupID  string `yaml:"group_id"`
}

// WebhooksConfig holds the shared secret for each webhook pipeline.
// Each resource kind has its own secret; they are never interchangeable.
type WebhooksConfig struct {
	EventSecret string `yaml:"event_secret"`
	ExamSecret  string `yaml:"exam_secret"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxFiles   int    `yaml:"file_max_files"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Environment: EnvLocal,
		Server: ServerConfig{
			Port:     8080,
			BasePath: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("IET_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("IET_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("IET_BASE_PATH"); v != "" {
		c.Server.BasePath = v
	}
	if v := os.Getenv("IET_TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("IET_TELEGRAM_GROUP_ID"); v != "" {
		c.Telegram.GroupID = v
	}
	if v := os.Getenv("IET_EVENT_WEBHOOK_SECRET"); v != "" {
		c.Webhooks.EventSecret = v
	}
	if v := os.Getenv("IET_EXAM_WEBHOOK_SECRET"); v != "" {
		c.Webhooks.ExamSecret = v
	}
	if v := os.Getenv("IET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("IET_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("IET_LOG_FILE"); v != "" {
		c.Logging.FilePath = v
	}
}

func (c *Config) validate() error {
	switch c.Environment {
	case EnvLocal, EnvDevelopment, EnvTest, EnvProduction:
	default:
		return fmt.Errorf("invalid environment: %q", c.Environment)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is required")
	}
	if c.Telegram.GroupID == "" {
		return fmt.Errorf("telegram group id is required")
	}
	if c.Webhooks.EventSecret == "" {
		return fmt.Errorf("event webhook secret is required")
	}
	if c.Webhooks.ExamSecret == "" {
		return fmt.Errorf("exam webhook secret is required")
	}
	c.Server.BasePath = strings.TrimRight(c.Server.BasePath, "/")
	return nil
}

// EnvIsProd reports whether the deployment environment is production.
func (c *Config) EnvIsProd() bool { return c.Environment == EnvProduction }

// EnvIsDev reports whether the deployment environment is development.
func (c *Config) EnvIsDev() bool { return c.Environment == EnvDevelopment }

// EnvIsLocal reports whether the deployment environment is local.
func (c *Config) EnvIsLocal() bool { return c.Environment == EnvLocal }
