package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/internal/config"
	"github.com/Cyfrin/aderyn-sub003/internal/logging"
	"github.com/Cyfrin/aderyn-sub003/report"
)

func newDetectCmd(cfg *config.Config) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "detect <path>",
		Short: "Run the detector suite over a directory of compiled Solidity sources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(logging.Options{Verbose: cfg.Verbose, JSON: cfg.JSONLogs})

			w, err := loadWorkspace(args[0], log)
			if err != nil {
				return fmt.Errorf("detect: %w", err)
			}

			profile, err := config.LoadDetectorProfile(cfg.DetectorProfile)
			if err != nil {
				return fmt.Errorf("detect: %w", err)
			}

			detectors := allDetectors(profile)
			result := detect.Run(w, detectors)
			summary := report.Build(w, result, detectors)

			out, err := renderReport(summary, cfg.OutputFormat)
			if err != nil {
				return fmt.Errorf("detect: %w", err)
			}

			if outFile == "" {
				fmt.Println(out)
				return nil
			}
			return os.WriteFile(outFile, []byte(out), 0o644)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "write the report here instead of stdout")
	return cmd
}

func renderReport(s *report.Summary, format string) (string, error) {
	switch format {
	case "json":
		doc, err := s.ToJSON()
		return string(doc), err
	case "sarif":
		doc, err := s.ToSARIF()
		return string(doc), err
	case "markdown", "":
		return s.ToMarkdown(), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}
