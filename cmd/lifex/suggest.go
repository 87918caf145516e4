package main

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
)

type suggestOutput struct {
	Current     decimal.Decimal     `json:"current"`
	BestCase    decimal.Decimal     `json:"bestCase"`
	Suggestions []domain.Suggestion `json:"suggestions"`
}

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [profile-file]",
		Short: "Rank the lifestyle changes with the biggest payoff",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := newEngine(cmd)
			lp, err := loadProfile(cmd, args, engine.Table, true)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), lp.Warnings)

			top, _ := cmd.Flags().GetInt("top")
			format, _ := cmd.Flags().GetString("format")

			result := engine.ComputeLifeExpectancy(lp.Profile)
			best := engine.ComputeLifeExpectancy(engine.BestProfile(lp.Profile))
			res := suggestOutput{
				Current:     result.AdjustedLifeExpectancy,
				BestCase:    best.AdjustedLifeExpectancy,
				Suggestions: calculation.TopSuggestions(engine.RankSuggestions(lp.Profile), top),
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				data, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case "text", "":
				fmt.Fprint(out, formatSuggestions(res))
			default:
				return fmt.Errorf("unsupported format: %s (available: text, json)", format)
			}
			return nil
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().IntP("top", "n", 3, "Show only the top N suggestions (0 = all)")
	cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	return cmd
}

func formatSuggestions(res suggestOutput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Current adjusted life expectancy: %s years\n", calculation.FormatYears(res.Current)))

	if len(res.Suggestions) == 0 {
		sb.WriteString("Every factor is already at its best choice.\n")
		return sb.String()
	}

	sb.WriteString("\nSUGGESTIONS\n")
	for i, s := range res.Suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s: %s -> %s (%s years)\n", i+1,
			calculation.FactorName(s.Factor),
			calculation.ChoiceLabel(s.Factor, s.CurrentChoice),
			calculation.ChoiceLabel(s.Factor, s.BestChoice),
			calculation.FormatSignedYears(s.PotentialImprovement)))
	}
	sb.WriteString(fmt.Sprintf("\nBest case with every change: %s years\n", calculation.FormatYears(res.BestCase)))
	return sb.String()
}
