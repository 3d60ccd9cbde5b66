// Package main implements the backoffice CLI: the HTTP server plus offline
// reports over the seed data.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/spec-kit/backoffice/internal/seed"
	"github.com/spec-kit/backoffice/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "backoffice",
		Short:        "Admin back office: server, statistics and exports",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("seed", os.Getenv("SEED_FILE"), "fixture file (TOML); bundled demo data when empty")

	root.AddCommand(newServeCmd(), newStatsCmd(), newExportCmd(), newSSNCmd())
	return root
}

// loadOffice builds collections from the --seed fixtures without any
// backend or event subscribers.
func loadOffice(cmd *cobra.Command) (*service.Backoffice, error) {
	path, err := cmd.Flags().GetString("seed")
	if err != nil {
		return nil, err
	}
	fixtures, err := seed.Load(path)
	if err != nil {
		return nil, err
	}
	office := service.NewBackoffice(service.CollectionDependencies{})
	office.Seed(fixtures)
	return office, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
