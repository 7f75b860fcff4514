package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hrportal/employee-portal/internal/portal"
	"github.com/hrportal/employee-portal/pkg/logger"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive portal",
	Long:  `Start the portal with its interactive shell. Navigate with #/<route>, manage the session with register/verify/login/logout.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(os.Getenv("APP_ENV"))
		log := logger.LoggerWrapper()

		substrate, err := openSubstrate(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
			os.Exit(1)
		}

		app := portal.NewApp(cfg, substrate, os.Stdin, os.Stdout, log)
		if err := app.Run(context.Background()); err != nil {
			log.Error("portal stopped", "error", err)
			os.Exit(1)
		}
	},
}
