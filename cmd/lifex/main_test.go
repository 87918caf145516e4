package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/compare"
	"github.com/rgehrsitz/lifex/internal/domain"
)

const smokerProfile = `name: Alex
age: 40
sex: male
smoking: current
physicalActivity: low
diet: average
alcohol: none
bmi: healthy
sleep: adequate
stress: average
socialConnections: weak
education: highSchool
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "lifex", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	expected := []string{"calculate", "compare", "suggest", "factors", "validate", "report", "serve", "version"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "expected command %s to be registered", name)
	}

	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lifex dev (commit none, built unknown)")
}

func TestCalculate_DefaultProfile(t *testing.T) {
	out, _, err := execute(t, "calculate")
	require.NoError(t, err)
	assert.Contains(t, out, "Adjusted Life Expectancy:  81.1 years")
	assert.Contains(t, out, "Estimated Years Remaining: 51.1 years")
}

func TestCalculate_Overrides(t *testing.T) {
	out, _, err := execute(t, "calculate", "--age", "40", "--sex", "Male", "--set", "smoking=current", "--format", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Your Profile: 71.1 years (base 76.1, -5.0), 31.1 remaining", strings.Split(out, "\n")[0])
}

func TestCalculate_ProfileFile(t *testing.T) {
	path := writeProfile(t, smokerProfile)

	out, _, err := execute(t, "calculate", path, "-f", "console-lite")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Alex: 66.1 years (base 76.1, -10.0), 26.1 remaining"), out)
}

func TestCalculate_Color(t *testing.T) {
	out, _, err := execute(t, "calculate", "--color")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, _, err = execute(t, "calculate")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")

	out, _, err = execute(t, "calculate", "--color", "--format", "summary")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[", "only the console formatter colors")
}

func TestCalculate_FormatHelpListsAliases(t *testing.T) {
	out, _, err := execute(t, "calculate", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "aliases:")
	assert.Contains(t, out, "summary")
}

func TestCalculate_OutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "report.json")

	out, _, err := execute(t, "calculate", "--format", "json", "--output", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var decoded struct {
		Result domain.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "81.1", decoded.Result.AdjustedLifeExpectancy.String())
}

func TestCalculate_Warnings(t *testing.T) {
	path := writeProfile(t, "diet: keto\n")

	_, errOut, err := execute(t, "calculate", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, `warning: unknown choice "keto" for diet`)
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"age out of range", []string{"calculate", "--age", "130"}, "age 130 must be between 0 and 120"},
		{"unknown sex", []string{"calculate", "--sex", "robot"}, `sex "robot"`},
		{"unknown override choice", []string{"calculate", "--set", "diet=keto"}, `unknown choice "keto" for diet`},
		{"malformed override", []string{"calculate", "--set", "diet"}, "expected factor=choice"},
		{"unknown format", []string{"calculate", "--format", "xml"}, "unsupported format: xml"},
		{"missing file", []string{"calculate", "does-not-exist.yaml"}, "failed to read file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCompare_Table(t *testing.T) {
	path := writeProfile(t, smokerProfile)

	out, _, err := execute(t, "compare", path, "--with", "quit_smoking,best_case")
	require.NoError(t, err)
	assert.Contains(t, out, "LIFE EXPECTANCY COMPARISON")
	assert.Contains(t, out, "Profile: "+path)
	assert.Contains(t, out, "quit_smoking")
	assert.Contains(t, out, "+10.0")
	assert.Contains(t, out, "RECOMMENDATIONS")
}

func TestCompare_CSV(t *testing.T) {
	out, _, err := execute(t, "compare", "--with", "eat_better", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "current", records[1][0])
	assert.Equal(t, "eat_better", records[2][0])
}

func TestCompare_CustomOverridesJSON(t *testing.T) {
	out, _, err := execute(t, "compare", "--set", "diet=excellent", "--set", "smoking=former", "--format", "json")
	require.NoError(t, err)

	var set compare.ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	require.Len(t, set.Alternatives, 1)
	assert.Equal(t, "custom", set.Alternatives[0].Name)
	assert.True(t, set.Alternatives[0].Comparison.Difference.IsZero())
	assert.Equal(t, domain.DietAverage, set.BaseProfile.Diet, "--set never changes the base")
}

func TestCompare_Errors(t *testing.T) {
	_, _, err := execute(t, "compare")
	assert.ErrorContains(t, err, "nothing to compare")

	_, _, err = execute(t, "compare", "--with", "teleport")
	assert.ErrorContains(t, err, "template teleport not found")

	_, _, err = execute(t, "compare", "--with", "eat_better", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format: xml")

	_, _, err = execute(t, "compare", "--set", "age=500", "--format", "json")
	assert.ErrorContains(t, err, "age 500 must be between 0 and 120")

	_, _, err = execute(t, "compare", "--transform", "set_choice:factor=diet")
	assert.ErrorContains(t, err, "missing required parameter: choice")
}

func TestCompare_Transforms(t *testing.T) {
	out, _, err := execute(t, "compare",
		"--transform", "set_choice:factor=diet,choice=good",
		"--transform", "best_choice:factor=sleep",
		"--format", "json")
	require.NoError(t, err)

	var set compare.ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	require.Len(t, set.Alternatives, 1)
	alt := set.Alternatives[0]
	assert.Equal(t, "transforms", alt.Name)
	assert.Equal(t, domain.DietGood, alt.Profile.Diet)
	assert.Equal(t, domain.SleepOptimal, alt.Profile.Sleep)
	assert.Equal(t, "4", alt.Comparison.Difference.String())
}

func TestCompare_ListTemplates(t *testing.T) {
	out, _, err := execute(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Templates:")
	assert.Contains(t, out, "quit_smoking")
	assert.Contains(t, out, "best_case")

	out, _, err = execute(t, "compare", "--list-templates", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "templates:")
	assert.Contains(t, out, "- name: quit_smoking")
}

func TestSuggest_DefaultTop(t *testing.T) {
	out, _, err := execute(t, "suggest")
	require.NoError(t, err)
	assert.Contains(t, out, "3. ")
	assert.NotContains(t, out, "4. ")
}

func TestSuggest(t *testing.T) {
	out, _, err := execute(t, "suggest", "--top", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Current adjusted life expectancy: 81.1 years")
	assert.Contains(t, out, "1. Diet: Average -> Excellent (+5.0 years)")
	assert.Contains(t, out, "2. Social Connections: Moderate -> Strong (+3.0 years)")
	assert.NotContains(t, out, "3. ")
	assert.Contains(t, out, "Best case with every change: 95.6 years")
}

func TestSuggest_JSON(t *testing.T) {
	out, _, err := execute(t, "suggest", "--format", "json", "--top", "0")
	require.NoError(t, err)

	var res suggestOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Suggestions, 7)
	assert.Equal(t, "95.6", res.BestCase.String())
	assert.Contains(t, out, `"bestCase": "95.6"`, "years are JSON strings")
}

func TestSuggest_AllBest(t *testing.T) {
	args := []string{"suggest"}
	for _, f := range domain.Factors {
		best, _ := calculation.DefaultTable.BestChoice(f)
		args = append(args, "--set", string(f)+"="+string(best.Choice))
	}

	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Every factor is already at its best choice.")
}

func TestFactors(t *testing.T) {
	out, _, err := execute(t, "factors")
	require.NoError(t, err)
	assert.Contains(t, out, "BASE LIFE EXPECTANCY")
	assert.Contains(t, out, "SMOKING (smoking)")
	assert.Contains(t, out, "Current Smoker")
	assert.Contains(t, out, "-10.0")
	assert.Regexp(t, `never\s+Never Smoked\s+0\.0  \(baseline\)`, out)
	assert.NotRegexp(t, `current\s+Current Smoker\s+-10\.0  \(baseline\)`, out)

	out, _, err = execute(t, "factors", "--json")
	require.NoError(t, err)
	var snap calculation.TableSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Len(t, snap.Factors, len(domain.Factors))
}

func TestValidate(t *testing.T) {
	path := writeProfile(t, smokerProfile)
	out, _, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	bad := writeProfile(t, "age: 200\n")
	_, _, err = execute(t, "validate", bad)
	assert.ErrorContains(t, err, "age 200")

	_, _, err = execute(t, "validate")
	assert.Error(t, err, "a profile file is required")
}

func TestReport(t *testing.T) {
	path := writeProfile(t, smokerProfile)
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "report.pdf")
	_, _, err := execute(t, "report", path, "--output", pdfPath)
	require.NoError(t, err)
	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	htmlPath := filepath.Join(dir, "report.html")
	_, _, err = execute(t, "report", path, "--output", htmlPath)
	require.NoError(t, err)
	data, err = os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Life Expectancy Report - Alex</title>")
}

func TestReportFormatFor(t *testing.T) {
	tests := map[string]string{
		"out.pdf":  "pdf",
		"out.HTML": "html",
		"out.htm":  "html",
		"out.csv":  "csv",
		"out.json": "json",
		"out.txt":  "console",
		"out.docx": "pdf",
		"":         "pdf",
	}
	for path, want := range tests {
		assert.Equal(t, want, reportFormatFor(path), path)
	}
}

func TestResolveAddr(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, defaultAddr, resolveAddr(newServeCmd()))

	t.Setenv("PORT", "9090")
	assert.Equal(t, ":9090", resolveAddr(newServeCmd()))

	cmd := newServeCmd()
	require.NoError(t, cmd.Flags().Set("addr", "127.0.0.1:7000"))
	assert.Equal(t, "127.0.0.1:7000", resolveAddr(cmd))
}
