package cmd

import (
	"fmt"
	"os"

	"github.com/hoaithan123/du-an-smart-food/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "smartfood",
	Short: "SmartFood recommendation and ordering backend",
	Long: `smartfood serves dish recommendations, combo pricing and order checkout for the
SmartFood storefront, and aggregates order and review events into popularity rankings.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./smartfood.yaml)")
	rootCmd.AddCommand(serveCmd, aggregateCmd, seedCmd)
}

// bootstrap loads the configuration and builds the logger every subcommand uses.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, config.MustInitLogger(cfg.Env, cfg.LogLevel), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
