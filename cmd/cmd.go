package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hrportal/employee-portal/internal"
	"github.com/hrportal/employee-portal/internal/storage"
	"github.com/hrportal/employee-portal/internal/storage/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Employee Portal",
	Long:  `A demo employee portal: accounts, departments, employees, and requests behind a simulated auth flow.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", "portal.db")
	v.SetDefault("seed.admin_email", "admin@example.com")
	v.SetDefault("seed.admin_password", "admin123")
	v.SetDefault("seed.admin_first_name", "Portal")
	v.SetDefault("seed.admin_last_name", "Admin")
	v.SetDefault("seed.departments", []string{"Engineering", "Human Resources"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, the defaults cover a local run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

func openSubstrate(cfg *internal.Config) (storage.Substrate, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemory(), nil
	case "sqlite":
		return sqlite.Open(cfg.Storage.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
}
