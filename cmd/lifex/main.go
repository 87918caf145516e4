package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/config"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/rgehrsitz/lifex/internal/transform"
)

// simpleCLILogger implements calculation.Logger using the standard log package.
// Debug lines are only written when debug is set.
type simpleCLILogger struct {
	debug bool
}

func (l simpleCLILogger) Debugf(format string, args ...any) {
	if l.debug {
		log.Printf("DEBUG: "+format, args...)
	}
}
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lifex",
		Short: "Life expectancy estimator CLI",
		Long: `Estimate adjusted life expectancy from a baseline by sex plus nine lifestyle
factors, compare what-if profiles and rank the changes with the biggest payoff.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("debug", false, "Enable debug logging of calculations")

	root.AddCommand(
		newCalculateCmd(),
		newCompareCmd(),
		newSuggestCmd(),
		newFactorsCmd(),
		newValidateCmd(),
		newReportCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lifex %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(out, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// newEngine builds the calculation engine, logging through the standard
// logger when --debug is set
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{debug: true})
	}
	return engine
}

// addProfileFlags registers the flags that adjust a loaded profile
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().Int("age", 0, "Override the profile age")
	cmd.Flags().String("sex", "", "Override the profile sex (male, female)")
	cmd.Flags().StringArray("set", nil, "Override a factor, e.g. --set smoking=never (repeatable)")
}

// loadedProfile is a profile ready for the engine, with its display name and
// any non-fatal warnings from loading
type loadedProfile struct {
	Name     string
	Path     string
	Profile  domain.Profile
	Warnings []string
}

// loadProfile reads the optional profile file, or starts from the default
// profile. With overrides set it then applies --age, --sex and --set.
func loadProfile(cmd *cobra.Command, args []string, table *calculation.ImpactTable, overrides bool) (*loadedProfile, error) {
	parser := &config.InputParser{Table: table}
	lp := &loadedProfile{Profile: domain.DefaultProfile()}

	if len(args) > 0 {
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		lp.Name = cfg.Name
		lp.Path = args[0]
		lp.Profile = cfg.Profile
	}

	if overrides {
		if cmd.Flags().Changed("age") {
			age, _ := cmd.Flags().GetInt("age")
			lp.Profile.Age = age
		}
		if cmd.Flags().Changed("sex") {
			sex, _ := cmd.Flags().GetString("sex")
			lp.Profile.Sex = domain.Sex(sex)
		}
		pairs, _ := cmd.Flags().GetStringArray("set")
		mods, err := transform.ParseOverrides(table, pairs)
		if err != nil {
			return nil, err
		}
		lp.Profile = lp.Profile.Apply(mods)
	}

	lp.Profile.Sex = domain.Sex(strings.ToLower(strings.TrimSpace(string(lp.Profile.Sex))))

	warnings, err := parser.ValidateProfile(lp.Profile)
	if err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	lp.Warnings = warnings
	return lp, nil
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
