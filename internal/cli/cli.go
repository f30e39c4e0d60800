package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pfrederiksen/nba-scores/internal/daterange"
	"github.com/pfrederiksen/nba-scores/internal/fetcher"
	"github.com/pfrederiksen/nba-scores/internal/logger"
	"github.com/pfrederiksen/nba-scores/internal/output"
	"github.com/pfrederiksen/nba-scores/internal/runner"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// OutputFormat specifies the output file format
type OutputFormat string

const FormatCSV OutputFormat = "csv"

var (
	flagStartDate string
	flagEndDate   string
	flagOut       string
	flagFormat    string
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nba-scores",
		Short: "Export historical NBA scoreboard data to CSV",
		Long: `Scrapes daily NBA scoreboard pages for a date range and writes one row
per team per game, with a column for every scoring period seen in the
range (quarters plus any overtimes). Failed dates are skipped, not fatal.`,
		RunE:         runExport,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flagStartDate, "start-date", "", "First date to scrape, YYYYMMDD (default: season opener "+daterange.SeasonStart+")")
	cmd.Flags().StringVar(&flagEndDate, "end-date", "", "Last date to scrape, YYYYMMDD (default: yesterday)")
	cmd.Flags().StringVar(&flagOut, "out", "nba_scores.csv", "Output file path")
	cmd.Flags().StringVar(&flagFormat, "format", "csv", "Output format: csv")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatCSV {
		return fmt.Errorf("invalid format: %s (must be 'csv')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	dates, err := daterange.New(flagStartDate, flagEndDate, nil)
	if err != nil {
		return fmt.Errorf("resolving date range: %w", err)
	}

	result := runner.New(fetcher.New()).Run(cmd.Context(), dates)

	if err := output.WriteFile(flagOut, result.Header, result.Rows); err != nil {
		// The table was fully computed; only persistence failed.
		return fmt.Errorf("writing %d computed rows to %s: %w", len(result.Rows), flagOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s (%d dates fetched, %d failed, %d without games)\n",
		len(result.Rows), flagOut, result.Fetched, result.Failed, result.Skipped)

	if flagVerbose {
		logger.Debug("run metrics", logger.MetricsSnapshot())
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
