package main

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/config"
	"github.com/rgehrsitz/lifex/internal/domain"
)

func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "List the lifestyle factors, their choices and year impacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := newEngine(cmd).Table
			asJSON, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := json.MarshalIndent(table.Snapshot(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprint(out, formatFactors(table))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the impact table as JSON")
	return cmd
}

func formatFactors(table *calculation.ImpactTable) string {
	var sb strings.Builder
	sb.WriteString("BASE LIFE EXPECTANCY\n")
	for _, sex := range []domain.Sex{domain.SexMale, domain.SexFemale} {
		if base, ok := table.BaseLifeExpectancy(sex); ok {
			sb.WriteString(fmt.Sprintf("  %-20s %6s\n", sex, calculation.FormatYears(base)))
		}
	}

	for _, f := range table.Factors() {
		sb.WriteString(fmt.Sprintf("\n%s (%s)\n", strings.ToUpper(calculation.FactorName(f)), f))
		baseline, _ := table.BaselineChoice(f)
		for _, ci := range table.Choices(f) {
			marker := ""
			if ci.Choice == baseline {
				marker = "  (baseline)"
			}
			sb.WriteString(fmt.Sprintf("  %-20s %-24s %6s%s\n",
				ci.Choice, calculation.ChoiceLabel(f, ci.Choice), calculation.FormatSignedYears(ci.Years), marker))
		}
	}
	return sb.String()
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate profile-file",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), cfg.Warnings)
			fmt.Fprintf(cmd.OutOrStdout(), "Profile file %s is valid\n", args[0])
			return nil
		},
	}
}
