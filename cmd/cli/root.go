package main

import (
	"energy-peaks/internal/config"
	"energy-peaks/internal/peaks"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	marketsFile string
	usageFile   string
)

var rootCmd = &cobra.Command{
	Use:   "peaks",
	Short: "Query peak power usage per energy market",
	Long: `peaks reads the market reference file and usage log used by the API server
and answers the same queries offline.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&marketsFile, "markets", "", "market reference file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&usageFile, "usage", "", "usage log file (overrides config)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadStore loads config, applies flag overrides and reads the reference data
func loadStore() (*peaks.Store, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, err
	}
	if marketsFile != "" {
		cfg.Data.MarketsFile = marketsFile
	}
	if usageFile != "" {
		cfg.Data.UsageFile = usageFile
	}
	return peaks.Load(cfg.Data)
}
