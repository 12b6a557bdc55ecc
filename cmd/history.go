package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/packcfg/internal/audit"
)

var (
	historyLimit int
	historyRaw   bool
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent compositions and bundler runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of events to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyRaw, "raw", false, "Output events as JSON lines")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the history")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := audit.NewLogger(paths().StateDir)

	if historyClear {
		if err := logger.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		logSuccess("History cleared")
		return nil
	}

	events, err := logger.Events(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(events) == 0 {
		logInfo("No history recorded in %s", logger.Path())
		return nil
	}

	out := cmd.OutOrStdout()
	for _, e := range events {
		if historyRaw {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}

		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		presets := strings.Join(e.Presets, ",")
		if presets == "" {
			presets = "-"
		}
		line := fmt.Sprintf("[%s] %-8s %-12s %s", ts, e.Type, e.Mode, presets)
		if e.Output != "" {
			line += " -> " + e.Output
		}
		if e.Details != "" {
			line += " (" + e.Details + ")"
		}
		fmt.Fprintln(out, line)
	}

	return nil
}
