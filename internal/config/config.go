package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server and client configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Auth    AuthConfig    `yaml:"auth"`
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// AuthConfig holds the token-signing secret. The default is only for
// local development; deployments set SITEDESK_JWT_SECRET.
type AuthConfig struct {
	Secret string `yaml:"secret"`
}

// APIConfig tells the dashboard client where the server lives.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// SessionConfig controls where the client persists its bearer token.
type SessionConfig struct {
	TokenPath string `yaml:"token_path"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "sitedesk.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Auth: AuthConfig{
			Secret: "sitedesk-dev-secret",
		},
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
		},
		Session: SessionConfig{
			TokenPath: defaultTokenPath(),
		},
	}

	if path := os.Getenv("SITEDESK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("SITEDESK_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SITEDESK_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SITEDESK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("SITEDESK_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("SITEDESK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("SITEDESK_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if secret := os.Getenv("SITEDESK_JWT_SECRET"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if baseURL := os.Getenv("SITEDESK_API_URL"); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if tokenPath := os.Getenv("SITEDESK_TOKEN_PATH"); tokenPath != "" {
		cfg.Session.TokenPath = tokenPath
	}

	return cfg, nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".sitedesk-token"
	}
	return filepath.Join(dir, "sitedesk", "token")
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
