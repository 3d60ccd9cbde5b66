package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/ssn"
)

func newSSNCmd() *cobra.Command {
	ssnCmd := &cobra.Command{
		Use:   "ssn",
		Short: "Resident registration number helpers",
	}

	mask := &cobra.Command{
		Use:   "mask <value>",
		Short: "Show the stored form of a resident number and the gender it implies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chosen, _ := cmd.Flags().GetString("gender")
			switch domain.Gender(chosen) {
			case domain.GenderUnset, domain.GenderMale, domain.GenderFemale:
			default:
				return fmt.Errorf("invalid --gender %q", chosen)
			}
			masked, gender := ssn.Apply(args[0], domain.Gender(chosen))
			if gender == domain.GenderUnset {
				gender = "unknown"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", masked, gender)
			return nil
		},
	}
	mask.Flags().String("gender", "", "gender chosen on the form (male|female); kept over the derived one")

	ssnCmd.AddCommand(mask)
	return ssnCmd
}
