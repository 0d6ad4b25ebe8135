package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// DefaultBlockSize is the number of hashtags per presentation block, sized
// for the Telegram comment limit.
const DefaultBlockSize = 30

// Config represents the entire tagmix configuration
type Config struct {
	Token     string `toml:"token"`
	BlockSize int    `toml:"block_size"`
	LogFormat string `toml:"log_format,omitempty"` // "text" or "json"
}

// Load reads the configuration from the config file and environment variables
func Load() (*Config, error) {
	// A .env file is optional; absence is not an error
	_ = godotenv.Load()

	cfg := &Config{
		BlockSize: DefaultBlockSize,
		LogFormat: "text",
	}

	configPath := getConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Override with environment variables if set. BOT_TOKEN is kept for
	// existing deployments; TAGMIX_TOKEN is handled through viper.
	if token := os.Getenv("BOT_TOKEN"); token != "" {
		cfg.Token = token
	}

	return cfg, nil
}

// Save writes the configuration to the config file
func Save(cfg *Config) error {
	configPath := getConfigPath()

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds the bot token, keep it private
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetToken returns the bot token.
// Priority: CLI flag / TAGMIX_TOKEN env > BOT_TOKEN env > config file.
func (c *Config) GetToken() (string, error) {
	if token := viper.GetString("token"); token != "" {
		return token, nil
	}
	if c.Token != "" {
		return c.Token, nil
	}
	return "", fmt.Errorf("no bot token configured\nRun 'tagmix setup' or set TAGMIX_TOKEN")
}

// GetBlockSize returns the hashtags-per-block limit, defaulting to DefaultBlockSize
func (c *Config) GetBlockSize() int {
	if size := viper.GetInt("block-size"); size > 0 {
		return size
	}
	if c.BlockSize > 0 {
		return c.BlockSize
	}
	return DefaultBlockSize
}

// GetLogFormat returns the log output format ("text" or "json")
func (c *Config) GetLogFormat() string {
	if format := viper.GetString("log-format"); format != "" {
		return format
	}
	if c.LogFormat != "" {
		return c.LogFormat
	}
	return "text"
}

// getConfigPath returns the path to the config file
func getConfigPath() string {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile
	}

	configPath, err := xdg.ConfigFile("tagmix/config.toml")
	if err != nil {
		// Fallback to home directory
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tagmix", "config.toml")
	}
	return configPath
}
