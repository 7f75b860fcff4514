package internal

import (
	"errors"
	"fmt"
	"strings"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type StorageConfig struct {
	// Driver selects the key-value substrate: "memory" or "sqlite".
	Driver string `mapstructure:"driver"`
	// Path is the sqlite database file. Ignored by the memory driver.
	Path string `mapstructure:"path"`
}

type SeedConfig struct {
	AdminEmail     string   `mapstructure:"admin_email"`
	AdminPassword  string   `mapstructure:"admin_password"`
	AdminFirstName string   `mapstructure:"admin_first_name"`
	AdminLastName  string   `mapstructure:"admin_last_name"`
	Departments    []string `mapstructure:"departments"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (c *Config) Validate() error {
	var errs []string

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Seed.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("seed config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case "memory":
		return nil
	case "sqlite":
		if c.Path == "" {
			return errors.New("path is required for the sqlite driver")
		}
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
}

func (c *SeedConfig) Validate() error {
	if c.AdminEmail == "" {
		return errors.New("admin_email is required")
	}
	if len(c.AdminPassword) < 6 {
		return errors.New("admin_password must be at least 6 characters")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}
