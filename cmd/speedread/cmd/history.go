package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/f3rmion/speedread/internal/config"
	"github.com/f3rmion/speedread/internal/history"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently finished texts",
	Long: `Show the texts you read to the end, newest first, with the
speed and mode used for each run.

Example:
  speedread history
  speedread history --limit 50`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	return historyReport(cmd.Context(), os.Stdout, getConfigDir(), loadConfig(), limit)
}

// historyReport prints the history in configDir. Nothing is created on
// disk when history is turned off.
func historyReport(ctx context.Context, w io.Writer, configDir string, cfg config.Config, limit int) error {
	if !cfg.History {
		fmt.Fprintln(w, "History is disabled.")
		return nil
	}

	store, err := openHistory(configDir)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	return printHistory(ctx, w, store, limit)
}

func printHistory(ctx context.Context, w io.Writer, store *history.Store, limit int) error {
	runs, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No finished texts yet.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(w, "%s  %s %-6s %5d/min  %6d units  %s\n",
			r.FinishedAt.Format("2006-01-02 15:04"), runewidth.FillRight(r.Title, 28), r.Mode, r.Speed, r.Units, r.Duration().Round(time.Second))
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d runs, %s units, best %d/min, average %.0f/min\n",
		stats.Runs, humanize.Comma(int64(stats.Units)), stats.MaxSpeed, stats.AvgSpeed)

	return nil
}
