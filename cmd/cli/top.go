package main

import (
	"encoding/json"
	"fmt"

	"energy-peaks/internal/peaks"

	"github.com/spf13/cobra"
)

var (
	topMarket string
	topFormat string
	topOut    string
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the five highest usage readings for a market",
	Example: `  peaks top --market caiso
  peaks top --market pjm --format csv --out results/pjm_peaks.csv`,
	RunE: runTop,
}

func init() {
	topCmd.Flags().StringVar(&topMarket, "market", "", "Energy market name (e.g. caiso)")
	topCmd.Flags().StringVar(&topFormat, "format", "table", "Output format: table, csv or json")
	topCmd.Flags().StringVar(&topOut, "out", "", "Write csv output to this file instead of stdout")
	_ = topCmd.MarkFlagRequired("market")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	switch topFormat {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("unknown format %q (want table, csv or json)", topFormat)
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	results, err := store.TopPeaks(topMarket)
	if err != nil {
		return err
	}

	switch topFormat {
	case "csv":
		if topOut != "" {
			if err := peaks.WritePeaksCSVFile(topOut, results); err != nil {
				return fmt.Errorf("writing %s: %w", topOut, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rows to %s\n", len(results), topOut)
			return nil
		}
		return peaks.WritePeaksCSV(cmd.OutOrStdout(), results)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintf(out, "No usage data found for %s\n", topMarket)
		return nil
	}
	fmt.Fprintf(out, "\n%s Peak Usage:\n", topMarket)
	fmt.Fprintln(out, "----------------------------------------")
	fmt.Fprintf(out, "%-4s  %-25s  %10s\n", "#", "Timestamp", "kW")
	fmt.Fprintln(out, "----------------------------------------")
	for i, r := range results {
		fmt.Fprintf(out, "%-4d  %-25s  %10.2f\n", i+1, r.Timestamp.Format("2006-01-02 15:04:05 MST"), r.UsageKW)
	}
	return nil
}
