package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultAPIURL = "https://api.github.com"
	defaultOwner  = "webstart-templates"
	defaultTopic  = "project-template"
)

type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	History  HistoryConfig  `yaml:"history"`
}

// RegistryConfig scopes the remote template search: repositories of Owner
// tagged with Topic.
type RegistryConfig struct {
	APIURL string `yaml:"api_url"`
	Owner  string `yaml:"owner"`
	Topic  string `yaml:"topic"`
	Token  string `yaml:"-"`
}

type HistoryConfig struct {
	Disabled bool `yaml:"disabled"`
}

func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".webstart"
	}
	return filepath.Join(homeDir, ".webstart")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

func DefaultHistoryPath() string {
	return filepath.Join(DefaultConfigDir(), "history.db")
}

func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			APIURL: defaultAPIURL,
			Owner:  defaultOwner,
			Topic:  defaultTopic,
		},
	}
}

// LoadConfig reads the yaml config file, falling back to defaults when it
// does not exist. The registry token comes from the environment, with a
// .env file honored when present.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Registry.APIURL == "" {
		cfg.Registry.APIURL = defaultAPIURL
	}
	if cfg.Registry.Owner == "" {
		cfg.Registry.Owner = defaultOwner
	}
	if cfg.Registry.Topic == "" {
		cfg.Registry.Topic = defaultTopic
	}

	godotenv.Load()
	cfg.Registry.Token = os.Getenv("WEBSTART_GITHUB_TOKEN")

	return cfg, nil
}
