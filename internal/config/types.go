package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Default config values.
const (
	DefaultConfigFilePath                 = "config/config.yml"
	DefaultEnvFilePath                    = ".env"
	DefaultServerPort                     = ":8080"
	DefaultServerReadTimeoutSeconds       = 30
	DefaultServerWriteTimeoutSeconds      = 30
	DefaultServerIdleTimeoutSeconds       = 60
	DefaultServerReadHeaderTimeoutSeconds = 30
	DefaultServerShutdownTimeoutSeconds   = 15
	DefaultLoggerLevel                    = LogLevelInfo
	DefaultLoggerFormat                   = LogFormatJSON
	DefaultNetwork                        = "eth-mainnet"
	DefaultEthClientTimeoutSeconds        = 20
)

// Environment variables carrying the provider credentials.
const (
	EnvAPIKey  = "EXPLORER_API_KEY"
	EnvNetwork = "EXPLORER_NETWORK"
	EnvNodeURL = "EXPLORER_NODE_URL"
)

// providerURLTemplate builds a hosted node endpoint from a network identifier and an API key.
const providerURLTemplate = "https://%s.g.alchemy.com/v2/%s"

// SupportedNetworks lists the network identifiers the hosted provider accepts.
var SupportedNetworks = []string{"eth-mainnet", "eth-sepolia", "eth-holesky"}

// LogLevel defines the type for logger levels.
type LogLevel string

// LogFormat defines the type for logger output formats.
type LogFormat string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
	ETHClient ETHClientConfig `yaml:"eth_client"`
}

// ServerConfig holds all configuration related to the HTTP server.
type ServerConfig struct {
	Port                     string `yaml:"port"`
	ReadTimeoutSeconds       int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds      int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds       int    `yaml:"idle_timeout_seconds"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
	ShutdownTimeoutSeconds   int    `yaml:"shutdown_timeout_seconds"`
}

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// ETHClientConfig holds all configuration related to the Ethereum node client.
type ETHClientConfig struct {
	// NodeURL overrides the hosted provider endpoint, e.g. for a self-hosted node.
	NodeURL string `yaml:"node_url"`
	Network string `yaml:"network"`
	// APIKey is only ever read from the environment.
	APIKey               string `yaml:"-"`
	ClientTimeoutSeconds int    `yaml:"client_timeout_seconds"`
}

// ResolveNodeURL returns the JSON-RPC endpoint to use.
func (c ETHClientConfig) ResolveNodeURL() string {
	if c.NodeURL != "" {
		return c.NodeURL
	}
	return fmt.Sprintf(providerURLTemplate, c.Network, c.APIKey)
}

// RedactedNodeURL is ResolveNodeURL with the API key masked, for logging.
func (c ETHClientConfig) RedactedNodeURL() string {
	resolved := c.ResolveNodeURL()
	if c.APIKey == "" {
		return resolved
	}
	return strings.ReplaceAll(resolved, c.APIKey, "***")
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" || (strings.HasPrefix(c.Server.Port, ":") && len(c.Server.Port) == 1) {
		return errors.New("server port (config key: server.port) cannot be empty or just ':'")
	}
	if c.Server.ReadTimeoutSeconds < 0 {
		return errors.New("server read timeout seconds (config key: server.read_timeout_seconds) cannot be negative")
	}
	if c.Server.WriteTimeoutSeconds < 0 {
		return errors.New("server write timeout seconds (config key: server.write_timeout_seconds) cannot be negative")
	}
	if c.Server.IdleTimeoutSeconds < 0 {
		return errors.New("server idle timeout seconds (config key: server.idle_timeout_seconds) cannot be negative")
	}
	if c.Server.ReadHeaderTimeoutSeconds < 0 {
		return errors.New(
			"server read header timeout seconds (config key: server.read_header_timeout_seconds) cannot be negative",
		)
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		return errors.New("server shutdown timeout seconds (config key: server.shutdown_timeout_seconds) must be greater than 0")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(string(c.Logger.Level))] {
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(string(c.Logger.Format))] {
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}

	if c.ETHClient.ClientTimeoutSeconds <= 0 {
		return errors.New("ethereum client timeout seconds (config key: eth_client.client_timeout_seconds) must be greater than 0")
	}

	if c.ETHClient.NodeURL != "" {
		parsed, err := url.Parse(c.ETHClient.NodeURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid ethereum node URL (config key: eth_client.node_url): '%s'", c.ETHClient.NodeURL)
		}
		return nil
	}

	if c.ETHClient.APIKey == "" {
		return fmt.Errorf("either eth_client.node_url or the %s environment variable must be set", EnvAPIKey)
	}
	if !isSupportedNetwork(c.ETHClient.Network) {
		return fmt.Errorf(
			"unsupported network (config key: eth_client.network, env: %s): '%s', must be one of: %s",
			EnvNetwork,
			c.ETHClient.Network,
			strings.Join(SupportedNetworks, ", "),
		)
	}

	return nil
}

func isSupportedNetwork(network string) bool {
	for _, n := range SupportedNetworks {
		if n == network {
			return true
		}
	}
	return false
}
