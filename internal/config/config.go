// Package config implements application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file overrides anything.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                     DefaultServerPort,
			ReadTimeoutSeconds:       DefaultServerReadTimeoutSeconds,
			WriteTimeoutSeconds:      DefaultServerWriteTimeoutSeconds,
			IdleTimeoutSeconds:       DefaultServerIdleTimeoutSeconds,
			ReadHeaderTimeoutSeconds: DefaultServerReadHeaderTimeoutSeconds,
			ShutdownTimeoutSeconds:   DefaultServerShutdownTimeoutSeconds,
		},
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
		ETHClient: ETHClientConfig{
			Network:              DefaultNetwork,
			ClientTimeoutSeconds: DefaultEthClientTimeoutSeconds,
		},
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at
// filePath and the environment (after loading envFile into it). Empty paths
// select the defaults, which may be missing; explicitly named files must exist.
func LoadConfig(filePath, envFile string) (*Config, error) {
	cfg := Default()

	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	if err := loadYAMLFile(filePath, cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadEnvFile(envFile string) error {
	loadPath := envFile
	if loadPath == "" {
		loadPath = DefaultEnvFilePath
	}

	if _, err := os.Stat(loadPath); err != nil {
		if errors.Is(err, os.ErrNotExist) && envFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read env file '%s': %w", loadPath, err)
	}

	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(loadPath); err != nil {
		return fmt.Errorf("failed to parse env file '%s': %w", loadPath, err)
	}
	return nil
}

func loadYAMLFile(filePath string, cfg *Config) error {
	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFilePath
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && filePath == "" {
			return nil
		}
		return fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	// Unmarshalling over the defaults keeps every key the file omits.
	if err := yaml.Unmarshal(fileBytes, cfg); err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		cfg.ETHClient.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvNetwork)); v != "" {
		cfg.ETHClient.Network = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvNodeURL)); v != "" {
		cfg.ETHClient.NodeURL = v
	}
}
