package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/sales-analyzer/internal/config"
	"github.com/example/sales-analyzer/internal/logging"
	"github.com/example/sales-analyzer/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "sales-analyzer",
		Short: "Analyze retail sales from a CSV export",
		Long: `Sales Analyzer loads a CSV of store transactions, prints revenue
statistics grouped by category, seller, city, payment method, product and
month, and renders a six-panel summary chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.New()
			if err != nil {
				return err
			}
			bindFlags(cmd, v)

			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging)
			if err != nil {
				return err
			}

			return pipeline.Run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (TOML)")
	flags.String("input", "", "input CSV path (default ventas_electronica.csv)")
	flags.String("output", "", "chart PNG path")
	flags.String("workbook", "", "optional .xlsx export path")
	flags.Int("dpi", 0, "chart resolution")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")

	cmd.AddCommand(versionCmd())
	return cmd
}

// flagKeys maps command-line flags to config keys
var flagKeys = map[string]string{
	"input":      "input_path",
	"output":     "output_path",
	"workbook":   "workbook_path",
	"dpi":        "chart.dpi",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// bindFlags binds only the flags set on the command line, so unset flags
// never mask config file or environment values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			_ = v.BindPFlag(key, f)
		}
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sales-analyzer %s\n", version)
		},
	}
}
