package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gningest/internal/iobatch"
	"github.com/gnames/gningest/internal/iosources"
	"github.com/spf13/cobra"
)

// getBatchCmd returns the batch command.
func getBatchCmd() *cobra.Command {
	var (
		sourcesPath string
		outputDir   string
		noProgress  bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Ingest all sources from sources.yaml concurrently",
		Long: `Ingest every source listed in the batch manifest.

The manifest is read from ~/.config/gningest/sources.yaml unless
--sources is given. Sources are ingested concurrently (--jobs or
jobs_number in config.yaml), envelopes keep the order of the manifest.

Envelopes are printed to stdout as a JSON array. With --output each
envelope is saved as a separate file in the given directory instead.
Exit status is not zero if any source failed.

Examples:
  # Ingest sources from the default manifest
  gningest batch

  # Use another manifest and save envelopes to files
  gningest batch -s ./sources.yaml -o ./envelopes

  # Run sequentially without a progress bar
  gningest batch -j 1 --no-progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBatch(cmd, sourcesPath, outputDir, noProgress)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&sourcesPath, "sources", "s", "",
		"path to the sources manifest (default: ~/.config/gningest/sources.yaml)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory for envelope files (default: print to stdout)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"do not show the progress bar")
	cmd.Flags().IntP("jobs", "j", 0,
		"number of sources ingested concurrently (default: number of CPU cores)")
	cmd.Flags().BoolP("drop-invalid", "d", false,
		"remove records that miss required fields")

	return cmd
}

func runBatch(
	cmd *cobra.Command,
	sourcesPath, outputDir string,
	noProgress bool,
) error {
	jobsFlag(cmd)
	dropInvalidFlag(cmd)

	srcs, err := iosources.New(cfg, sourcesPath).Load()
	if err != nil {
		return err
	}

	var batchOpts []iobatch.Option
	if !noProgress {
		batchOpts = append(batchOpts, iobatch.OptProgress(cmd.ErrOrStderr()))
	}

	b := iobatch.New(cfg, newCoordinator(false), logger, batchOpts...)
	res, err := b.Run(cmd.Context(), srcs)
	if err != nil {
		return err
	}

	if outputDir == "" {
		data, err := res.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		paths, err := res.Write(outputDir)
		if err != nil {
			return err
		}
		gn.Info("Saved <em>%d</em> envelopes to <em>%s</em>", len(paths), outputDir)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), res.Summary())

	if failed := res.Failed(); failed > 0 {
		return iobatch.BatchFailedSourcesError(failed, len(res.Items))
	}
	return nil
}
