// Package main provides the CLI entry point for turnos-go.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/turnos-go/pkg/turnos"
	"github.com/ukaji3/turnos-go/pkg/turnos/models"
	"github.com/ukaji3/turnos-go/pkg/turnos/output"
)

var (
	outputPath  string
	reportPath  string
	configPath  string
	format      string
	pretty      bool
	year        int
	sheetPrefix string
	startSheet  int
	endSheet    int
	slotMinutes int
	strictDates bool
	detectKinds bool
	verbose     bool
	logFormat   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "turnos [input.xlsx]",
		Short: "Extract patient appointments from a weekly Excel agenda",
		Long: `turnos reads a workbook with one sheet per week (dates across the first
row, times down the first column) and writes every patient appointment
found in the grid as JSON or iCalendar.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	defaults := turnos.DefaultOptions()
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", `Output file path, "-" for stdout (default: turnos_<year>_import.<format>)`)
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write per-sheet report JSON to this path")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML options file")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, ics")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&year, "year", defaults.Year, "Target year; header cells must contain it")
	rootCmd.Flags().StringVar(&sheetPrefix, "sheet-prefix", defaults.SheetPrefix, "Sheet name prefix")
	rootCmd.Flags().IntVar(&startSheet, "start-sheet", defaults.StartSheet, "First sheet number")
	rootCmd.Flags().IntVar(&endSheet, "end-sheet", defaults.EndSheet, "Last sheet number")
	rootCmd.Flags().IntVar(&slotMinutes, "slot-minutes", int(defaults.SlotInterval/time.Minute), "Minutes added for rows without a time")
	rootCmd.Flags().BoolVar(&strictDates, "strict-dates", false, "Drop columns whose header has the year but no date")
	rootCmd.Flags().BoolVar(&detectKinds, "kinds", false, "Classify appointments by cell fill colour")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug diagnostics")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	opts.Logger = log

	inputPath := fmt.Sprintf("%d.xlsx", opts.Year)
	if len(args) == 1 {
		inputPath = args[0]
	}

	if format != "json" && format != "ics" {
		return fmt.Errorf("invalid format: %s (must be json or ics)", format)
	}

	res, err := turnos.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	data, err := render(res, opts, log)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	dest := outputPath
	if dest == "" {
		dest = fmt.Sprintf("turnos_%d_import.%s", opts.Year, format)
	}

	// Write output
	if dest == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if reportPath != "" {
		report, err := output.ResultToJSON(res, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(reportPath, report, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if dest != "-" {
		printSummary(cmd.OutOrStdout(), res, dest)
	}
	return nil
}

// buildOptions layers the config file (if any) under explicitly set flags.
func buildOptions(cmd *cobra.Command) (turnos.Options, error) {
	opts := turnos.DefaultOptions()
	if configPath != "" {
		loaded, err := turnos.LoadOptions(configPath)
		if err != nil {
			return opts, fmt.Errorf("failed to load config: %w", err)
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("year") {
		opts.Year = year
	}
	if flags.Changed("sheet-prefix") {
		opts.SheetPrefix = sheetPrefix
	}
	if flags.Changed("start-sheet") {
		opts.StartSheet = startSheet
	}
	if flags.Changed("end-sheet") {
		opts.EndSheet = endSheet
	}
	if flags.Changed("slot-minutes") {
		opts.SlotInterval = time.Duration(slotMinutes) * time.Minute
	}
	if flags.Changed("strict-dates") {
		opts.StrictDates = strictDates
	}
	if flags.Changed("kinds") {
		opts.DetectKinds = detectKinds
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func newLogger() (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	switch logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be text or json)", logFormat)
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log, nil
}

func render(res *models.Result, opts turnos.Options, log logrus.FieldLogger) ([]byte, error) {
	if format == "ics" {
		data, skipped, err := output.ToICS(res.Appointments, output.CalendarOptions{Duration: opts.SlotInterval})
		if err != nil {
			return nil, err
		}
		if skipped > 0 {
			log.WithField("skipped", skipped).Warn("appointments without a normalized date left out of the calendar")
		}
		return data, nil
	}
	return output.ToJSON(res.Appointments, pretty)
}
