package transform

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string             `yaml:"name" json:"name"`
	Description string             `yaml:"description" json:"description"`
	Transforms  []ProfileTransform `yaml:"-" json:"-"`
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common lifestyle changes
func CreateBuiltInTemplates(table *calculation.ImpactTable) *TemplateRegistry {
	table = tableOrDefault(table)
	registry := NewTemplateRegistry()

	single := []struct {
		name        string
		description string
		factor      domain.Factor
		choice      domain.Choice
	}{
		{"quit_smoking", "Stop smoking entirely", domain.FactorSmoking, domain.SmokingNever},
		{"get_active", "Regular vigorous physical activity", domain.FactorPhysicalActivity, domain.ActivityHigh},
		{"eat_better", "Switch to an excellent diet", domain.FactorDiet, domain.DietExcellent},
		{"drink_less", "Stop drinking alcohol", domain.FactorAlcohol, domain.AlcoholNone},
		{"healthy_weight", "Reach a healthy BMI (18.5-24.9)", domain.FactorBMI, domain.BMIHealthy},
		{"sleep_better", "Sleep 7-8 hours consistently", domain.FactorSleep, domain.SleepOptimal},
		{"reduce_stress", "Bring chronic stress down to low", domain.FactorStress, domain.StressLow},
		{"connect_more", "Build a strong social network", domain.FactorSocialConnections, domain.SocialStrong},
		{"further_education", "Complete an advanced degree", domain.FactorEducation, domain.EducationAdvanced},
	}

	for _, s := range single {
		registry.Register(Template{
			Name:        s.name,
			Description: s.description,
			Transforms: []ProfileTransform{
				&SetChoice{Factor: s.factor, Choice: s.choice, Table: table},
			},
		})
	}

	registry.Register(Template{
		Name:        "healthy_habits",
		Description: "Quit smoking, eat better and get active",
		Transforms: []ProfileTransform{
			&SetChoice{Factor: domain.FactorSmoking, Choice: domain.SmokingNever, Table: table},
			&SetChoice{Factor: domain.FactorDiet, Choice: domain.DietExcellent, Table: table},
			&SetChoice{Factor: domain.FactorPhysicalActivity, Choice: domain.ActivityHigh, Table: table},
		},
	})

	best := make([]ProfileTransform, 0, len(table.Factors()))
	worst := make([]ProfileTransform, 0, len(table.Factors()))
	for _, f := range table.Factors() {
		best = append(best, &BestChoice{Factor: f, Table: table})
		worst = append(worst, &WorstChoice{Factor: f, Table: table})
	}

	registry.Register(Template{
		Name:        "best_case",
		Description: "Every factor at its best choice",
		Transforms:  best,
	})

	registry.Register(Template{
		Name:        "worst_case",
		Description: "Every factor at its worst choice",
		Transforms:  worst,
	})

	return registry
}

// ApplyTemplate applies a template to a base profile
func ApplyTemplate(base domain.Profile, template Template) (domain.Profile, error) {
	if len(template.Transforms) == 0 {
		return base, nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{
		"Single Factor": {},
		"Combinations":  {},
	}

	for _, name := range registry.List() {
		template := registry.templates[name]
		if len(template.Transforms) == 1 {
			categories["Single Factor"] = append(categories["Single Factor"], template)
		} else {
			categories["Combinations"] = append(categories["Combinations"], template)
		}
	}

	for _, category := range []string{"Single Factor", "Combinations"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  lifex compare profile.yaml --with quit_smoking,eat_better\n")
	sb.WriteString("  lifex compare profile.yaml --with best_case --format json\n")

	return sb.String()
}

type templateDoc struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Changes     []string `yaml:"changes"`
}

// MarshalTemplatesYAML dumps the registry's templates, sorted by name, with
// the description of each transform they apply
func MarshalTemplatesYAML(registry *TemplateRegistry) ([]byte, error) {
	docs := make([]templateDoc, 0, len(registry.templates))
	for _, name := range registry.List() {
		t := registry.templates[name]
		doc := templateDoc{Name: t.Name, Description: t.Description, Changes: []string{}}
		for _, tr := range t.Transforms {
			doc.Changes = append(doc.Changes, tr.Description())
		}
		docs = append(docs, doc)
	}
	data, err := yaml.Marshal(map[string][]templateDoc{"templates": docs})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal templates: %w", err)
	}
	return data, nil
}
