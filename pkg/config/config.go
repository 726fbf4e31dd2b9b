package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/superawesome/blog/pkg/logger"
)

// Validator is implemented by every loadable configuration.
type Validator interface {
	Validate() error
}

// Config is the blog configuration.
type Config struct {
	Service ServiceConfig `koanf:"service"`
	Logger  logger.Config `koanf:"logger"`
	Post    PostConfig    `koanf:"post"`
}

// ServiceConfig contains service metadata.
type ServiceConfig struct {
	Name        string `koanf:"name"`
	Environment string `koanf:"environment"` // dev, staging, production
}

// PostConfig selects the command guard semantics of the post aggregate and
// how the application service retries on stream version conflicts.
type PostConfig struct {
	// IdempotentPublish skips Publish when title, content and category are unchanged.
	IdempotentPublish bool `koanf:"idempotent_publish"`
	// IdempotentTag skips AddTag for a tag that is already present.
	IdempotentTag bool `koanf:"idempotent_tag"`
	// IdempotentUntag skips RemoveTag for a tag that is absent.
	IdempotentUntag bool `koanf:"idempotent_untag"`

	MaxRetries   int           `koanf:"max_retries"`
	RetryBackoff time.Duration `koanf:"retry_backoff"`
}

// Manager handles configuration loading and parsing.
type Manager struct {
	k           *koanf.Koanf
	serviceName string
	envPrefix   string
	configPaths []string
}

// NewManager creates a new configuration manager.
func NewManager(serviceName string) *Manager {
	return &Manager{
		k:           koanf.New("."),
		serviceName: serviceName,
		envPrefix:   EnvPrefix + "_",
		configPaths: getDefaultConfigPaths(serviceName),
	}
}

// WithConfigPaths replaces the file lookup list.
func (m *Manager) WithConfigPaths(paths ...string) *Manager {
	m.configPaths = paths
	return m
}

// LoadConfig loads cfg from its current values, then config files, then the environment.
func (m *Manager) LoadConfig(cfg Validator) error {
	if err := m.k.Load(structs.Provider(cfg, "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	for _, path := range m.configPaths {
		if err := m.loadFromFile(path); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	if err := m.loadFromEnv(); err != nil {
		return fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := m.k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// GetString returns a string value for the given key.
func (m *Manager) GetString(key string) string {
	return m.k.String(key)
}

// GetInt returns an int value for the given key.
func (m *Manager) GetInt(key string) int {
	return m.k.Int(key)
}

// GetBool returns a bool value for the given key.
func (m *Manager) GetBool(key string) bool {
	return m.k.Bool(key)
}

func (m *Manager) loadFromFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	return m.k.Load(file.Provider(path), parser)
}

// loadFromEnv maps BLOG_POST__MAX_RETRIES to post.max_retries.
// A double underscore separates nesting levels so single underscores survive in key names.
func (m *Manager) loadFromEnv() error {
	prefix := m.envPrefix
	return m.k.Load(env.Provider(prefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, prefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
}

func getDefaultConfigPaths(serviceName string) []string {
	paths := []string{
		"config.yaml",
		"config.json",
		fmt.Sprintf("%s.yaml", serviceName),
		fmt.Sprintf("%s.json", serviceName),
		fmt.Sprintf("configs/%s.yaml", serviceName),
		fmt.Sprintf("configs/%s.%s.yaml", serviceName, getEnvironment()),
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		paths = append([]string{configPath}, paths...)
	}
	return paths
}

func getEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	return "dev"
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Service.Name == "" {
		return errors.New("service name is required")
	}
	if c.Post.MaxRetries < 0 {
		return fmt.Errorf("invalid post max retries: %d", c.Post.MaxRetries)
	}
	if c.Post.RetryBackoff < 0 {
		return fmt.Errorf("invalid post retry backoff: %s", c.Post.RetryBackoff)
	}
	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Service.Environment == "production" || c.Service.Environment == "prod"
}

// GetDefaults returns default configuration values. Every command guard is on.
func GetDefaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:        "blog",
			Environment: "dev",
		},
		Logger: *logger.DefaultConfig(),
		Post: PostConfig{
			IdempotentPublish: true,
			IdempotentTag:     true,
			IdempotentUntag:   true,
			MaxRetries:        DefaultMaxRetries,
			RetryBackoff:      DefaultRetryBackoff,
		},
	}
}

// Load reads the configuration for serviceName on top of GetDefaults.
func Load(serviceName string) (*Config, error) {
	cfg := GetDefaults()
	cfg.Service.Name = serviceName
	if err := NewManager(serviceName).LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
