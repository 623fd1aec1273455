// Package cli wires the reader, normalizer and formatter into the phonenorm command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phonenorm/internal/config"
	"phonenorm/internal/formatter"
	"phonenorm/internal/logger"
	"phonenorm/internal/models"
	"phonenorm/internal/normalizer"
	"phonenorm/internal/reader"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
	format     string
	style      string
	failFast   bool
	strict     bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "phonenorm <file>",
		Short: "Normalize a tab-separated list of names and phone numbers",
		Long: "Reads lines of the form <name>\\t<number>, converts each number to\n" +
			"(AAA) EEE-LLLL and prints <number>\\t<name>. Numbers that cannot be\n" +
			"normalized are printed as [Invalid: <original text>].",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			return run(cmd, cfg, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to YAML configuration file")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	f.StringVar(&opts.format, "format", formatter.FormatTSV, "output layout: tsv or table")
	f.StringVar(&opts.style, "style", models.StyleDisplay, "number style: display or e164")
	f.BoolVar(&opts.failFast, "fail-fast", false, "abort on the first area/exchange code violation")
	f.BoolVar(&opts.strict, "strict", false, "also reject numbers not assigned in the US numbering plan")

	return cmd
}

// resolveConfig loads the config file, if any, then applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts rootOptions) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}

	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}

	if flags.Changed("style") {
		cfg.Output.Style = opts.style
	}

	if flags.Changed("fail-fast") {
		cfg.Validation.FailFast = opts.failFast
	}

	if flags.Changed("strict") {
		cfg.Validation.StrictNANP = opts.strict
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config, path string) error {
	log := logger.New(cmd.ErrOrStderr(), cfg.Logging.Level).With("file", path)
	log.Debug("starting", "config", cfg.String())

	records, err := reader.ReadFile(path)
	if err != nil {
		return err
	}

	processor := normalizer.NewProcessor(normalizer.Options{
		Logger:     log,
		FailFast:   cfg.Validation.FailFast,
		StrictNANP: cfg.Validation.StrictNANP,
	})

	results, err := processor.ProcessAll(records)
	if err != nil {
		return err
	}

	if err := formatter.Write(cmd.OutOrStdout(), results, formatter.Options{
		Format: cfg.Output.Format,
		Style:  cfg.Output.Style,
	}); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	summary := models.Summarize(results)
	log.Info("done", "total", summary.Total, "valid", summary.Valid, "invalid", summary.Invalid)

	return nil
}
