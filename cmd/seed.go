package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/hrportal/employee-portal/internal/storage"
	"github.com/hrportal/employee-portal/internal/store"
	"github.com/hrportal/employee-portal/pkg/logger"
	"github.com/spf13/cobra"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the portal database",
	Long:  `Write the seed database (one admin account, two departments) to the configured storage.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		substrate, err := openSubstrate(cfg)
		if err != nil {
			log.Fatalf("failed to open storage: %v", err)
		}

		if !seedForce {
			if _, present, err := substrate.Get(ctx, storage.StoreBlobKey); err != nil {
				log.Fatalf("failed to check existing data: %v", err)
			} else if present {
				fmt.Println("store already seeded; use --force to overwrite")
				return
			}
		}

		seed := store.SeedOptions{
			AdminEmail:     cfg.Seed.AdminEmail,
			AdminPassword:  cfg.Seed.AdminPassword,
			AdminFirstName: cfg.Seed.AdminFirstName,
			AdminLastName:  cfg.Seed.AdminLastName,
			Departments:    cfg.Seed.Departments,
		}

		repo := store.NewRepositoryWithSeed(substrate, seed, logger.LoggerWrapper())
		if err := repo.Save(ctx, store.SeedWith(seed)); err != nil {
			log.Fatalf("failed to write seed data: %v", err)
		}

		fmt.Println("Seeded admin account:", store.NormalizeEmail(cfg.Seed.AdminEmail))
		fmt.Println("Seeded departments:", len(cfg.Seed.Departments))
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Overwrite existing data")
}
