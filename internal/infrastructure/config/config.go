package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Bank    Bank    `mapstructure:"bank"`
	Console Console `mapstructure:"console"`
}

// Bank configuration
type Bank struct {
	Name string `mapstructure:"name"`
}

// Console configuration
type Console struct {
	Prompt string `mapstructure:"prompt"`
}

// LoadConfig loads configuration from YAML file
// Uses CONFIG_ENV environment variable to determine which config file to load
func LoadConfig(configDir string) (*Config, error) {
	configEnv := os.Getenv("CONFIG_ENV")
	if configEnv == "" {
		configEnv = "local"
	}

	// Load base app-config.yaml as template/defaults (if it exists)
	baseConfigPath := fmt.Sprintf("%s/app-config.yaml", configDir)
	baseConfigExists := false
	if _, err := os.Stat(baseConfigPath); err == nil {
		viper.SetConfigFile(baseConfigPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read base config file: %w", err)
		}
		baseConfigExists = true
	}

	// Load environment-specific config (e.g., local.yaml when CONFIG_ENV=local)
	envConfigPath := fmt.Sprintf("%s/%s.yaml", configDir, configEnv)
	if _, err := os.Stat(envConfigPath); err == nil {
		if baseConfigExists {
			// Merge environment config on top of base config
			viper.SetConfigFile(envConfigPath)
			if err := viper.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to merge env config file: %w", err)
			}
		} else {
			// If no base config, load environment config directly
			viper.SetConfigFile(envConfigPath)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read env config file: %w", err)
			}
		}
	}

	// Also read from environment variables (with prefix)
	viper.SetEnvPrefix("GIC")
	viper.AutomaticEnv()

	// Bind environment variables
	viper.BindEnv("bank.name", "GIC_BANK_NAME", "BANK_NAME")
	viper.BindEnv("console.prompt", "GIC_CONSOLE_PROMPT")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults if not provided
	if cfg.Bank.Name == "" {
		cfg.Bank.Name = "AwesomeGIC Bank"
	}
	if cfg.Console.Prompt == "" {
		cfg.Console.Prompt = "> "
	}

	return &cfg, nil
}
