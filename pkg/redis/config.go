package redis

import (
	"fmt"
	"time"
)

// Config holds the Redis connection settings.
type Config struct {
	Host         string
	Port         int
	Password     string
	Database     int
	MinIdleConns int
	MaxIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns a configuration pointing at a local Redis.
func DefaultConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		Database:     0,
		MinIdleConns: 1,
		MaxIdleConns: 10,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Validate checks the configuration for obviously invalid values.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("redis host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid redis port: %d", c.Port)
	}
	if c.Database < 0 {
		return fmt.Errorf("invalid redis database: %d", c.Database)
	}
	return nil
}
