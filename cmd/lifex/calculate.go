package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/lifex/internal/output"
)

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [profile-file]",
		Short: "Estimate life expectancy for a profile",
		Long: `Estimate adjusted life expectancy for a profile file, or for the default
profile when no file is given.

Examples:
  lifex calculate profile.yaml
  lifex calculate --age 45 --sex female --set smoking=former
  lifex calculate profile.yaml --format pdf --output report.pdf
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := newEngine(cmd)
			lp, err := loadProfile(cmd, args, engine.Table, true)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), lp.Warnings)

			format, _ := cmd.Flags().GetString("format")
			outputPath, _ := cmd.Flags().GetString("output")
			color, _ := cmd.Flags().GetBool("color")
			return writeReport(cmd, output.NewReport(lp.Name, lp.Profile, engine), format, outputPath, color)
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().StringP("format", "f", "console", formatHelp())
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	addColorFlag(cmd)
	return cmd
}

func addColorFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("color", false, "Color signed values and headings in console output with ANSI sequences")
}

// writeReport renders the report to outputPath, to stdout, or for binary
// formats without a path to a timestamped file in the working directory
func writeReport(cmd *cobra.Command, report *output.Report, format, outputPath string, color bool) error {
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s (available: %s)",
			format, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	f = output.WithColor(f, color)

	if outputPath == "" && output.IsBinaryFormat(format) {
		filename, err := output.WriteFormatted(f, report, f.Name())
		if err != nil {
			return fmt.Errorf("failed to write %s report: %w", f.Name(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	if outputPath == "" {
		return output.WriteReport(f, report, cmd.OutOrStdout())
	}

	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
	return nil
}

// formatHelp describes the --format flag, listing formatter names and aliases
func formatHelp() string {
	return "Output format (" + strings.Join(output.AvailableFormatterNames(), ", ") +
		"; aliases: " + strings.Join(output.AvailableFormatAliases(), ", ") + ")"
}
