package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"gopkg.in/yaml.v3"
)

// ProfileConfig is a loaded profile file. Warnings lists recoverable issues
// such as choice keys the impact table does not know; they score as zero.
type ProfileConfig struct {
	Name     string
	Profile  domain.Profile
	Warnings []string
}

// profileDocument is the on-disk shape: a profile plus an optional display name
type profileDocument struct {
	Name           string `yaml:"name"`
	domain.Profile `yaml:",inline"`
}

// InputParser handles parsing of profile files
type InputParser struct {
	Table *calculation.ImpactTable
}

// NewInputParser creates a new input parser over the default impact table
func NewInputParser() *InputParser {
	return &InputParser{Table: calculation.DefaultTable}
}

// LoadFromFile loads a profile from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*ProfileConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes profile data. JSON documents are valid YAML, so one decoder
// handles both. Fields left out of the document keep their DefaultProfile value.
func (ip *InputParser) Parse(data []byte) (*ProfileConfig, error) {
	doc := profileDocument{Profile: domain.DefaultProfile()}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	doc.Profile.Sex = domain.Sex(strings.ToLower(strings.TrimSpace(string(doc.Profile.Sex))))

	warnings, err := ip.ValidateProfile(doc.Profile)
	if err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &ProfileConfig{
		Name:     doc.Name,
		Profile:  doc.Profile,
		Warnings: warnings,
	}, nil
}

// ValidateProfile applies the basic range checks. Age and sex are hard
// errors. Unknown choices only produce warnings because the engine scores
// them as zero rather than rejecting them.
func (ip *InputParser) ValidateProfile(p domain.Profile) ([]string, error) {
	if p.Age < domain.MinAge || p.Age > domain.MaxAge {
		return nil, fmt.Errorf("age %d must be between %d and %d", p.Age, domain.MinAge, domain.MaxAge)
	}
	if !p.Sex.Valid() {
		return nil, fmt.Errorf("sex %q must be %q or %q", p.Sex, domain.SexMale, domain.SexFemale)
	}

	table := ip.Table
	if table == nil {
		table = calculation.DefaultTable
	}

	warnings := []string{}
	for _, f := range domain.Factors {
		c := p.Choice(f)
		if !table.HasChoice(f, c) {
			warnings = append(warnings, fmt.Sprintf("unknown choice %q for %s, it will count as 0 years", c, f))
		}
	}
	return warnings, nil
}

// SaveToFile writes a profile as YAML
func (ip *InputParser) SaveToFile(filename string, cfg *ProfileConfig) error {
	data, err := yaml.Marshal(profileDocument{Name: cfg.Name, Profile: cfg.Profile})
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
