package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spec-kit/backoffice/internal/export"
	"github.com/spec-kit/backoffice/internal/query"
	"github.com/spec-kit/backoffice/internal/service"
)

func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export collections to files",
	}

	payments := &cobra.Command{
		Use:   "payments",
		Short: "Export payments as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE:  runExportPayments,
	}
	payments.Flags().String("format", "csv", "csv or xlsx")
	payments.Flags().StringP("out", "o", "", "output file; stdout when empty")
	payments.Flags().String("search", "", "free-text search")
	for _, facet := range paymentFacets() {
		payments.Flags().String(facet, "", facet+" filter")
	}
	payments.Flags().Bool("bom", false, "prefix CSV with a UTF-8 byte order mark")

	exportCmd.AddCommand(payments)
	return exportCmd
}

// paymentFacets are the filters the HTTP list and export routes accept.
func paymentFacets() []string {
	return service.PaymentSchema().Query.FacetNames()
}

func runExportPayments(cmd *cobra.Command, _ []string) (err error) {
	format, _ := cmd.Flags().GetString("format")
	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("unsupported format %q", format)
	}
	outPath, _ := cmd.Flags().GetString("out")
	if format == "xlsx" && outPath == "" {
		return fmt.Errorf("xlsx export requires --out")
	}

	office, err := loadOffice(cmd)
	if err != nil {
		return err
	}
	f := query.Filter{Facets: map[string]string{}}
	f.Search, _ = cmd.Flags().GetString("search")
	for _, facet := range paymentFacets() {
		if v, _ := cmd.Flags().GetString(facet); v != "" {
			f.Facets[facet] = v
		}
	}
	items, err := office.Payments.Items(commandContext(cmd), f)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		file, cerr := os.Create(outPath)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}

	bom, _ := cmd.Flags().GetBool("bom")
	opts := export.Options{BOM: bom}
	if format == "xlsx" {
		err = export.WritePaymentsXLSX(w, items, opts)
	} else {
		err = export.WritePaymentsCSV(w, items, opts)
	}
	if err != nil {
		return err
	}
	if outPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "exported %d payments to %s\n", len(items), outPath)
	}
	return nil
}
