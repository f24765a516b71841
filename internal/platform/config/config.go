package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Local persisted slots
	DataFilePath string // full system-state JSON blob
	AuthFilePath string // bare authenticated-user identifier

	// Remote mirror
	MirrorURL     string
	MirrorTimeout time.Duration

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_FILE_PATH", "data/system.json")
	viper.SetDefault("AUTH_FILE_PATH", "data/auth_user")
	viper.SetDefault("MIRROR_URL", "")
	viper.SetDefault("MIRROR_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DataFilePath = viper.GetString("DATA_FILE_PATH")
	cfg.AuthFilePath = viper.GetString("AUTH_FILE_PATH")

	cfg.MirrorURL = viper.GetString("MIRROR_URL")
	if cfg.MirrorURL == "" {
		log.Println("Warning: MIRROR_URL not set. Running on local slots only; remote sync disabled.")
	}

	mirrorTimeoutStr := viper.GetString("MIRROR_TIMEOUT")
	mirrorTimeout, err := time.ParseDuration(mirrorTimeoutStr)
	if err != nil {
		mirrorTimeout = 10 * time.Second
		if mirrorTimeoutStr != "" {
			log.Printf("Warning: Invalid value for MIRROR_TIMEOUT ('%s'). Defaulting to %s.\n", mirrorTimeoutStr, mirrorTimeout.String())
		}
	}
	cfg.MirrorTimeout = mirrorTimeout

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
