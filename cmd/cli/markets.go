package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List markets in the market index",
	RunE:  runMarkets,
}

func init() {
	rootCmd.AddCommand(marketsCmd)
}

func runMarkets(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	markets, err := store.Markets()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s  %6s  %8s\n", "Market", "ID", "Records")
	fmt.Fprintln(out, "----------------------------")
	for _, m := range markets {
		fmt.Fprintf(out, "%-8s  %6d  %8d\n", m.Name, m.ID, m.RecordCount)
	}
	fmt.Fprintf(out, "Total: %d markets (%d usage records)\n", len(markets), store.RecordCount())
	return nil
}
