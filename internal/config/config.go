package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pharmxd-server/internal/domain"
)

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	// Set configuration file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/pharmxd/")

	// Set environment variable prefix and enable automatic env binding
	viper.SetEnvPrefix("PHARMXD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	m.setDefaults()

	// Read configuration file (optional - will use defaults and env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and environment variables
	}

	// Unmarshal configuration into struct
	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.max_upload_mb", 32)

	// Session store defaults
	viper.SetDefault("session.max_sessions", 256)
	viper.SetDefault("session.ttl", "30m")

	// Rate limit defaults
	viper.SetDefault("rate_limit.requests_per_second", 5.0)
	viper.SetDefault("rate_limit.burst", 10)

	// Feedback store defaults
	viper.SetDefault("feedback.enabled", true)
	viper.SetDefault("feedback.db_path", "pharmxd-feedback.db")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetSessionConfig returns session store configuration
func (m *Manager) GetSessionConfig() *domain.SessionConfig {
	return &m.config.Session
}

// GetFeedbackConfig returns feedback store configuration
func (m *Manager) GetFeedbackConfig() *domain.FeedbackConfig {
	return &m.config.Feedback
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	// Validate server configuration
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("invalid max upload size: %d MB", config.Server.MaxUploadMB)
	}

	// Validate session store configuration
	if config.Session.MaxSessions <= 0 {
		return fmt.Errorf("invalid session capacity: %d", config.Session.MaxSessions)
	}
	if config.Session.TTL <= 0 {
		return fmt.Errorf("invalid session TTL: %s", config.Session.TTL)
	}

	// Validate rate limit configuration
	if config.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("invalid rate limit: %f requests/second", config.RateLimit.RequestsPerSecond)
	}
	if config.RateLimit.Burst <= 0 {
		return fmt.Errorf("invalid rate limit burst: %d", config.RateLimit.Burst)
	}

	// Validate feedback store configuration
	if config.Feedback.Enabled && config.Feedback.DBPath == "" {
		return fmt.Errorf("feedback database path is required when feedback is enabled")
	}

	// Validate logging configuration
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction returns true if running in production mode
func IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}
