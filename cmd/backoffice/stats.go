package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spec-kit/backoffice/internal/service"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "stats <collection|dashboard>",
		Short:     "Print the summary counters of a collection as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: append([]string{"dashboard"}, service.CollectionNames...),
		RunE: func(cmd *cobra.Command, args []string) error {
			office, err := loadOffice(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			var summary any
			if args[0] == "dashboard" {
				summary, err = office.Dashboard(ctx)
			} else {
				summary, err = office.CollectionStats(ctx, args[0])
			}
			if err != nil {
				return fmt.Errorf("%w (known: dashboard, %s)", err, strings.Join(service.CollectionNames, ", "))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
}
