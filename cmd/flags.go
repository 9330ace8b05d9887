package cmd

import (
	"github.com/gnames/gningest/pkg/config"
	"github.com/gnames/gningest/pkg/sources"
	"github.com/spf13/cobra"
)

// formatFlag returns the format for a source. An explicit --format wins,
// then the file extension of the source, then the configured default.
func formatFlag(cmd *cobra.Command, source string) string {
	if cmd.Flags().Changed("format") {
		res, _ := cmd.Flags().GetString("format")
		return res
	}
	if f, ok := sources.FormatFromName(source); ok {
		return f.String()
	}
	return cfg.Ingest.Format
}

// dropInvalidFlag updates config if --drop-invalid was given.
func dropInvalidFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("drop-invalid") {
		return
	}
	b, _ := cmd.Flags().GetBool("drop-invalid")
	cfg.Update([]config.Option{config.OptIngestDropInvalid(b)})
}

// jobsFlag updates config if --jobs was given.
func jobsFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("jobs") {
		return
	}
	i, _ := cmd.Flags().GetInt("jobs")
	cfg.Update([]config.Option{config.OptJobsNumber(i)})
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "",
		"format of the source: json, csv or xml "+
			"(default: from file extension or config)")
}
