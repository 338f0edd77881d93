// Package config handles CampusCare configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Classifier provider names accepted in the config file.
const (
	ProviderKeyword   = "keyword"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// DefaultSearchPaths returns the config file search order.
// An explicit path (from -config flag) is checked first.
// Then: ./campuscare.yaml, ~/.config/campuscare/config.yaml,
// /etc/campuscare/config.yaml.
func DefaultSearchPaths() []string {
	paths := []string{"campuscare.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "campuscare", "config.yaml"))
	}

	paths = append(paths, "/etc/campuscare/config.yaml")
	return paths
}

// FindConfig locates a config file. If explicit is non-empty, it must exist.
// Otherwise, searches DefaultSearchPaths and returns the first that exists.
// Returns the path found, or an error if nothing was found.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	for _, p := range DefaultSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found (searched: %v)", DefaultSearchPaths())
}

// Config holds all CampusCare configuration.
type Config struct {
	Listen     ListenConfig     `yaml:"listen"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Router     RouterConfig     `yaml:"router"`
	LogLevel   string           `yaml:"log_level"`
	LogFormat  string           `yaml:"log_format"`
}

// ListenConfig defines where the HTTP request layer binds.
type ListenConfig struct {
	Addr string `yaml:"addr"`
}

// ClassifierConfig selects and tunes the intent classifier. API keys are read
// from the provider SDK's environment variables (OPENAI_API_KEY,
// ANTHROPIC_API_KEY) unless set here.
type ClassifierConfig struct {
	Provider    string  `yaml:"provider"` // keyword, openai or anthropic
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`
	APIKey      string  `yaml:"api_key"`
}

// RouterConfig optionally replaces individual keyword classes of the fallback
// router. An empty list keeps the built-in defaults for that class.
type RouterConfig struct {
	CrisisKeywords   []string `yaml:"crisis_keywords"`
	AcademicKeywords []string `yaml:"academic_keywords"`
	NegativeKeywords []string `yaml:"negative_keywords"`
	PositiveKeywords []string `yaml:"positive_keywords"`
}

// Default returns the baseline configuration used when no file is present.
func Default() *Config {
	return &Config{
		Listen: ListenConfig{Addr: ":8080"},
		Classifier: ClassifierConfig{
			Provider:    ProviderKeyword,
			Temperature: 0.3,
			MaxTokens:   50,
		},
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load reads and validates the config file at path, applying defaults for
// unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Classifier.Provider {
	case ProviderKeyword, ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown classifier provider %q", c.Classifier.Provider)
	}
	if c.Listen.Addr == "" {
		return fmt.Errorf("listen.addr must not be empty")
	}
	return nil
}
