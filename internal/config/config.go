package config

import (
	"github.com/crichub/cricket-stats-service/internal/logger"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logger   logger.Config  `mapstructure:"logger"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

// DatabaseConfig describes the file-backed SQLite store.
type DatabaseConfig struct {
	Path         string `mapstructure:"path"`
	BusyTimeout  int    `mapstructure:"busy_timeout"` // milliseconds
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.Path == "" {
		c.Database.Path = "cricket.db"
	}
	if c.Database.BusyTimeout <= 0 {
		c.Database.BusyTimeout = 5000
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 4
	}
}
