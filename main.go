package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/orayew2002/excel-adapter/domain"
	"github.com/orayew2002/excel-adapter/processor"
	"github.com/orayew2002/excel-adapter/report"
	"github.com/orayew2002/excel-adapter/script"
	"github.com/orayew2002/excel-adapter/workbook"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	outputDir string
	prefix    string
	verbose   bool
	rows      int
	fileName  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "excel-adapter",
		Short:        "Build styled xlsx workbooks from TOML scripts",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every workbook command")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory to write into (default: probe <prefix>uploads)")

	runCmd := &cobra.Command{
		Use:   "run script.toml",
		Short: "Run a workbook script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	runCmd.Flags().StringVar(&prefix, "prefix", "", "path prefix for the uploads directory probe (overrides the script)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a sample ledger filled with fake entries",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().IntVar(&rows, "rows", 25, "number of ledger entries")
	demoCmd.Flags().StringVar(&fileName, "file", "ledger.xlsx", "output file name")

	rootCmd.AddCommand(runCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()
}

func options(log *zerolog.Logger) workbook.Options {
	opts := workbook.DefaultOptions()
	opts.OutputDir = outputDir
	opts.Logger = log
	return opts
}

func runScript(cmd *cobra.Command, args []string) error {
	log := newLogger()

	s, err := script.Load(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("prefix") {
		s.Output.Prefix = prefix
	}

	name, err := processor.New(script.NewDefault(), options(&log)).Run(s)
	if err != nil {
		log.Error().Err(err).Str("script", args[0]).Msg("run failed")
		return err
	}

	fmt.Println("done:", name)
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	wb := workbook.New(options(&log))
	defer wb.Close()

	entries := domain.GenerateEntries(rows)
	totalRow, err := report.Ledger(wb, "excel-adapter", "Payment ledger", entries)
	if err != nil {
		log.Error().Err(err).Msg("demo failed")
		return err
	}

	name, err := wb.Save(fileName, "")
	if err != nil {
		log.Error().Err(err).Msg("save failed")
		return err
	}

	log.Info().
		Int("entries", len(entries)).
		Int("total_row", totalRow).
		Float64("total", domain.Total(entries)).
		Msg("ledger written")
	fmt.Println("done:", filepath.Join(outputDir, name))
	return nil
}
