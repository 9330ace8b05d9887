/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gningest/internal/iofs"
	"github.com/gnames/gningest/internal/iologger"
	"github.com/gnames/gningest/internal/ioresolve"
	app "github.com/gnames/gningest/pkg"
	"github.com/gnames/gningest/pkg/config"
	"github.com/gnames/gningest/pkg/ingest"
	"github.com/gnames/gnlib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
	logger  *slog.Logger

	// logCloser releases the log destination opened by bootstrap.
	logCloser io.Closer
)

// getRootCmd creates the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gningest",
		Short:   "GNingest reads JSON, CSV and XML records and validates them",
		Long: `GNingest is a CLI tool that ingests flat records (for example yacht
data) from JSON, CSV or XML sources, checks that every record carries the
required fields and reports the result as a JSON envelope.

Without a subcommand it ingests the built-in sample_data.json and prints
the envelope.

Commands:
  - ingest: ingest one source (file, URL or stdin)
  - validate: report which records miss required fields
  - batch: ingest all sources listed in sources.yaml concurrently

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNINGEST_*)
  3. Config file (~/.config/gningest/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (ingest.format → GNINGEST_INGEST_FORMAT).

  Examples:
    GNINGEST_INGEST_FORMAT           Default format (json/csv/xml)
    GNINGEST_INGEST_DROP_INVALID     Remove invalid records (true/false)
    GNINGEST_LOG_LEVEL               Log level (debug/info/warn/error)
    GNINGEST_JOBS_NUMBER             Concurrent sources in batch mode

  See 'go doc github.com/gnames/gningest/pkg/config' for complete list.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gningest version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gningest")

	rootCmd.AddCommand(getIngestCmd())
	rootCmd.AddCommand(getValidateCmd())
	rootCmd.AddCommand(getBatchCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	closeLog()
	defaultLog := config.New().Log
	logDir := config.LogDir(homeDir)
	if logger, logCloser, err = iologger.Init(logDir, defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureSourcesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping the log started above
	closeLog()
	if logger, logCloser, err = iologger.Init(logDir, cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	logger.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// runRoot ingests the embedded sample data and prints its envelope.
func runRoot(cmd *cobra.Command, args []string) error {
	coord := newCoordinator(false)
	env := coord.IngestContent(
		iofs.SampleDataName, iofs.SampleData, "json",
	)
	return printEnvelope(cmd, env)
}

// newCoordinator creates an ingestion coordinator from the loaded
// config. With inline set a source is treated as the content itself.
// Extra options are applied last.
func newCoordinator(inline bool, extra ...ingest.Option) *ingest.Coordinator {
	coordOpts := []ingest.Option{
		ingest.OptRequiredFields(cfg.Ingest.RequiredFields),
		ingest.OptDropInvalid(cfg.Ingest.DropInvalid),
	}
	if !inline {
		coordOpts = append(coordOpts, ingest.OptResolver(ioresolve.New(cfg)))
	}
	coordOpts = append(coordOpts, extra...)
	return ingest.New(logger, coordOpts...)
}

// printEnvelope writes the envelope as indented JSON. A failed envelope
// is reported to the user and returned as an error, so the exit status
// is not zero.
func printEnvelope(cmd *cobra.Command, env ingest.Envelope) error {
	data, err := env.Encode(true)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if err = env.Err(); err != nil {
		printError(err)
		return err
	}
	return nil
}

// printError shows a user-facing explanation of an ingestion failure.
func printError(err error) {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		gn.PrintErrorMessage(gnErr)
		return
	}
	gnlib.PrintUserMessage(err)
}

// closeLog releases the current log destination, if any.
func closeLog() {
	if logCloser == nil {
		return
	}
	_ = logCloser.Close()
	logCloser = nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().ExecuteContext(context.Background())
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNINGEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Ingest configuration
	_ = v.BindEnv("ingest.format", "GNINGEST_INGEST_FORMAT")
	_ = v.BindEnv("ingest.required_fields", "GNINGEST_INGEST_REQUIRED_FIELDS")
	_ = v.BindEnv("ingest.drop_invalid", "GNINGEST_INGEST_DROP_INVALID")
	_ = v.BindEnv("ingest.max_source_size", "GNINGEST_INGEST_MAX_SOURCE_SIZE")
	_ = v.BindEnv("ingest.http_timeout", "GNINGEST_INGEST_HTTP_TIMEOUT")

	// Log configuration
	_ = v.BindEnv("log.level", "GNINGEST_LOG_LEVEL")
	_ = v.BindEnv("log.format", "GNINGEST_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "GNINGEST_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("jobs_number", "GNINGEST_JOBS_NUMBER")

	v.AutomaticEnv()
}
