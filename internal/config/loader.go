package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from a YAML file with APP_* environment overrides.
// A .env file in the working directory is loaded first if present, so local
// development can override without exporting anything.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine: defaults plus env cover every knob.
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.setDefaults()
	return &config, nil
}
