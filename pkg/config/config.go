package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/iqmath/config"
	ConfigFileName    = "iqmath.yml"
)

// FallbackSigningKey is used when no session signing key is configured.
// It is acceptable only for development; Validate rejects it in production.
const FallbackSigningKey = "fallback-secret-change-in-production"

// ValidEnvironments is the list of accepted environment names
var ValidEnvironments = []string{"development", "production"}

// Config holds all iqmath server configuration settings
type Config struct {
	// Environment is the deployment environment (development or production)
	Environment string `yaml:"environment" json:"environment"`

	// SessionSigningKey is the HMAC key used to sign session tokens
	SessionSigningKey string `yaml:"session_signing_key" json:"session_signing_key"`

	// AllowedOrigins is a list of CORS origins permitted to call the API
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Environment:       "development",
		SessionSigningKey: FallbackSigningKey,
		AllowedOrigins:    []string{},
		sources:           make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("IQMATH_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{"environment", "session_signing_key", "allowed_origins"}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.Environment != "" {
		c.Environment = file.Environment
		c.sources["environment"] = "file"
	}
	if file.SessionSigningKey != "" {
		c.SessionSigningKey = file.SessionSigningKey
		c.sources["session_signing_key"] = "file"
	}
	if len(file.AllowedOrigins) > 0 {
		c.AllowedOrigins = file.AllowedOrigins
		c.sources["allowed_origins"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("IQMATH_ENVIRONMENT"); val != "" {
		c.Environment = val
		c.sources["environment"] = "environment"
	}
	if val := os.Getenv("IQMATH_SESSION_SIGNING_KEY"); val != "" {
		c.SessionSigningKey = val
		c.sources["session_signing_key"] = "environment"
	}
	if val := os.Getenv("IQMATH_ALLOWED_ORIGINS"); val != "" {
		c.AllowedOrigins = splitAndTrim(val)
		c.sources["allowed_origins"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesFallbackSigningKey reports whether the weak built-in signing key is active
func (c *Config) UsesFallbackSigningKey() bool {
	return c.SessionSigningKey == FallbackSigningKey
}

// Validate validates the configuration
func (c *Config) Validate() error {
	valid := false
	for _, env := range ValidEnvironments {
		if c.Environment == env {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	if c.IsProduction() && c.UsesFallbackSigningKey() {
		return fmt.Errorf("session_signing_key must be set in production")
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	key := c.SessionSigningKey
	if !c.UsesFallbackSigningKey() {
		key = "(set)"
	}
	return []Attribute{
		{Name: "environment", Value: c.Environment, Source: c.Source("environment")},
		{Name: "session_signing_key", Value: key, Source: c.Source("session_signing_key")},
		{Name: "allowed_origins", Value: strings.Join(c.AllowedOrigins, ","), Source: c.Source("allowed_origins")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
