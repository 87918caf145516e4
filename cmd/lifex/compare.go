package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/lifex/internal/compare"
	"github.com/rgehrsitz/lifex/internal/transform"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [profile-file]",
		Short: "Compare a profile against what-if templates",
		Long: `Compare a base profile against built-in what-if templates and ad hoc
factor overrides. Without a profile file the default profile is the base.

Examples:
  lifex compare profile.yaml --with quit_smoking,get_active
  lifex compare --with best_case --set diet=good --format csv
  lifex compare --transform set_choice:factor=diet,choice=good --transform best_choice:factor=sleep
  lifex compare --list-templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := newEngine(cmd)
			compareEngine := compare.NewCompareEngine(engine)

			if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
				if format, _ := cmd.Flags().GetString("format"); strings.EqualFold(format, "yaml") {
					data, err := transform.MarshalTemplatesYAML(compareEngine.TemplateRegistry)
					if err != nil {
						return err
					}
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(compareEngine.TemplateRegistry))
				return nil
			}

			lp, err := loadProfile(cmd, args, engine.Table, false)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), lp.Warnings)

			templatesStr, _ := cmd.Flags().GetString("with")
			sets, _ := cmd.Flags().GetStringArray("set")
			outputFormat, _ := cmd.Flags().GetString("format")

			overrides, err := transform.ParseOverrides(engine.Table, sets)
			if err != nil {
				return err
			}

			specs, _ := cmd.Flags().GetStringArray("transform")
			transforms, err := transform.NewTransformRegistry(engine.Table).ParseTransformSpecs(specs)
			if err != nil {
				return err
			}

			comparisonSet, err := compareEngine.Compare(lp.Profile, compare.CompareOptions{
				Templates:  transform.ParseTemplateList(templatesStr),
				Overrides:  overrides,
				Transforms: transforms,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			comparisonSet.ProfilePath = lp.Path

			out := cmd.OutOrStdout()
			switch strings.ToLower(outputFormat) {
			case "csv":
				data, err := (&compare.CSVFormatter{}).Format(comparisonSet)
				if err != nil {
					return err
				}
				fmt.Fprint(out, data)
			case "json":
				data, err := (&compare.JSONFormatter{Pretty: true}).Format(comparisonSet)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, data)
			case "compact":
				fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(comparisonSet))
			case "table", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(comparisonSet))
			default:
				return fmt.Errorf("unsupported format: %s (available: table, compact, csv, json)", outputFormat)
			}
			return nil
		},
	}
	cmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringArray("set", nil, "Compare a custom alternative with this override, e.g. --set diet=good (repeatable)")
	cmd.Flags().StringArray("transform", nil,
		"Compare a transform alternative, e.g. set_choice:factor=diet,choice=good (repeatable; transforms: "+
			strings.Join(transform.NewTransformRegistry(nil).List(), ", ")+")")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json; yaml with --list-templates)")
	cmd.Flags().Bool("list-templates", false, "List all available what-if templates")
	return cmd
}
