// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// InsecureDefaultSecret is the hardcoded JWT secret fallback. It exists so a
// bare checkout runs, and must be overridden in any real deployment.
const InsecureDefaultSecret = "supersecretkey"

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, err
		}
	}

	// Set default values
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "saas_starter")
	viper.SetDefault("JWT_SECRET", InsecureDefaultSecret)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWTSecret == InsecureDefaultSecret {
		log.Println("WARNING: JWT_SECRET is the insecure built-in default. Set JWT_SECRET before deploying.")
	}
	return nil
}
