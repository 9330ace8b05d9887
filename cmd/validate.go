package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gningest/pkg/ingest"
	"github.com/gnames/gningest/pkg/record"
	"github.com/spf13/cobra"
)

// getValidateCmd returns the validate command.
func getValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate SOURCE",
		Short: "Report records that miss required fields",
		Long: `Ingest a source and print a validation report for every record.

A record is valid when all required fields are present, empty values
count as present. Required fields are set in config.yaml
(ingest.required_fields), by default: name, type, length.

SOURCE is a file path, an http(s) URL, or "-" to read from stdin.

Examples:
  gningest validate fleet.json
  gningest validate marina.txt -f csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			coord := newCoordinator(false, ingest.OptDropInvalid(false))
			env := coord.Ingest(cmd.Context(), source, formatFlag(cmd, source))
			if err := env.Err(); err != nil {
				printError(err)
				return err
			}

			writeReport(cmd.OutOrStdout(), env.Records, coord.RequiredFields())
			return nil
		},
	}

	addFormatFlag(cmd)

	return cmd
}

// writeReport prints validity of each record followed by totals.
func writeReport(w io.Writer, recs []record.Record, required []string) {
	var invalid int
	for i, rec := range recs {
		missing := rec.Missing(required)
		if len(missing) == 0 {
			fmt.Fprintf(w, "%6d  valid\n", i)
			continue
		}
		invalid++
		fmt.Fprintf(w, "%6d  invalid  missing: %s\n", i, strings.Join(missing, ", "))
	}

	fmt.Fprintf(w, "\nRecords: %s, valid: %s, invalid: %s\n",
		humanize.Comma(int64(len(recs))),
		humanize.Comma(int64(len(recs)-invalid)),
		humanize.Comma(int64(invalid)),
	)
}
