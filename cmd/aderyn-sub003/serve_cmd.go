package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/internal/config"
	"github.com/Cyfrin/aderyn-sub003/internal/logging"
	"github.com/Cyfrin/aderyn-sub003/internal/server"
	"github.com/Cyfrin/aderyn-sub003/report"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <path>",
		Short: "Run the detector suite once and host the report over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(logging.Options{Verbose: cfg.Verbose, JSON: cfg.JSONLogs})

			w, err := loadWorkspace(args[0], log)
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}

			profile, err := config.LoadDetectorProfile(cfg.DetectorProfile)
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}

			detectors := allDetectors(profile)
			result := detect.Run(w, detectors)
			summary := report.Build(w, result, detectors)

			store := &server.Store{}
			store.Set(summary)

			handler := server.New(store, log)
			return server.ListenAndServe(cfg.HTTPBind, handler, log)
		},
	}

	cmd.PersistentFlags().StringVar(&cfg.HTTPBind, "http-bind", cfg.HTTPBind, "address to bind the report HTTP server to")
	return cmd
}
