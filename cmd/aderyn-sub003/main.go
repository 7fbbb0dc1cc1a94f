// Command aderyn-sub003 runs the detector suite over a directory of
// pre-compiled Solidity sources and prints or serves the resulting
// report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cyfrin/aderyn-sub003/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Defaults()
	config.LoadDotEnv(&cfg)

	root := &cobra.Command{
		Use:   "aderyn-sub003",
		Short: "Static analysis engine for Solidity",
	}

	root.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	root.PersistentFlags().BoolVar(&cfg.JSONLogs, "json-logs", cfg.JSONLogs, "emit logs as JSON")
	root.PersistentFlags().StringVar(&cfg.DetectorProfile, "detector-profile", cfg.DetectorProfile, "path to an aderyn.detectors.yaml exclusion list")
	root.PersistentFlags().StringVar(&cfg.OutputFormat, "output", cfg.OutputFormat, "report format: markdown, json, or sarif")

	root.AddCommand(newDetectCmd(&cfg))
	root.AddCommand(newServeCmd(&cfg))

	return root
}
