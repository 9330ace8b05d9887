package cmd

import (
	"github.com/spf13/cobra"
)

// getIngestCmd returns the ingest command.
func getIngestCmd() *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "ingest SOURCE",
		Short: "Ingest records from one source and print the JSON envelope",
		Long: `Ingest records from a JSON, CSV or XML source.

SOURCE is a file path, an http(s) URL, or "-" to read from stdin.
With --inline, SOURCE is the content itself.

The result is printed as a JSON envelope. It contains decoded records
on success, or an error message on failure. Records that miss required
fields are reported in the log and kept unless --drop-invalid is set.
Exit status is not zero if ingestion failed.

Examples:
  # Ingest a local file, format is taken from the extension
  gningest ingest fleet.csv

  # Ingest a URL with an explicit format
  gningest ingest https://example.org/yachts -f xml

  # Read from stdin
  cat fleet.json | gningest ingest -

  # Content given inline
  gningest ingest --inline '[{"name":"Serenity","type":"sloop","length":12}]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			dropInvalidFlag(cmd)

			format := cfg.Ingest.Format
			if !inline || cmd.Flags().Changed("format") {
				format = formatFlag(cmd, source)
			}

			coord := newCoordinator(inline)
			env := coord.Ingest(cmd.Context(), source, format)
			return printEnvelope(cmd, env)
		},
	}

	addFormatFlag(cmd)
	cmd.Flags().BoolVar(&inline, "inline", false,
		"treat SOURCE as the content to ingest")
	cmd.Flags().BoolP("drop-invalid", "d", false,
		"remove records that miss required fields")

	return cmd
}
