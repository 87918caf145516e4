package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/lifex/internal/output"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report profile-file",
		Short: "Write a printable report for a profile",
		Long: `Write a report file for a profile. The format follows the --output
extension unless --format is given, and defaults to PDF.

Examples:
  lifex report profile.yaml --output report.pdf
  lifex report profile.yaml --output report.html
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := newEngine(cmd)
			lp, err := loadProfile(cmd, args, engine.Table, false)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), lp.Warnings)

			outputPath, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = reportFormatFor(outputPath)
			}
			color, _ := cmd.Flags().GetBool("color")
			return writeReport(cmd, output.NewReport(lp.Name, lp.Profile, engine), format, outputPath, color)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Report file (default: timestamped file in the working directory)")
	cmd.Flags().StringP("format", "f", "", "Report format (default: from the output extension, else pdf)")
	addColorFlag(cmd)
	return cmd
}

// reportFormatFor maps an output file extension to a formatter name
func reportFormatFor(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "htm":
		return "html"
	case "txt":
		return "console"
	}
	if ext != "" && output.GetFormatterByName(ext) != nil {
		return ext
	}
	return "pdf"
}
