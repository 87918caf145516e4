package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
)

// TransformRegistry creates transforms from string parameters, for CLI use.
type TransformRegistry struct {
	table     *calculation.ImpactTable
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(table *calculation.ImpactTable, params map[string]string) (ProfileTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry(table *calculation.ImpactTable) *TransformRegistry {
	registry := &TransformRegistry{
		table:     tableOrDefault(table),
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_choice", createSetChoice)
	registry.Register("best_choice", createBestChoice)
	registry.Register("worst_choice", createWorstChoice)
	registry.Register("set_age", createSetAge)
	registry.Register("set_sex", createSetSex)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ProfileTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(r.table, params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_choice:factor=smoking,choice=never"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ProfileTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	params, err := parseParams(parts[1])
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", name, err)
	}
	return r.Create(name, params)
}

// ParseTransformSpecs parses every spec, failing on the first bad one
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]ProfileTransform, error) {
	transforms := make([]ProfileTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

func parseParams(s string) (map[string]string, error) {
	params := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return params, nil
}

func requireParam(params map[string]string, key string) (string, error) {
	v, ok := params[key]
	if !ok || v == "" {
		return "", fmt.Errorf("missing required parameter: %s", key)
	}
	return v, nil
}

func requireFactor(params map[string]string) (domain.Factor, error) {
	raw, err := requireParam(params, "factor")
	if err != nil {
		return "", err
	}
	f, ok := domain.ParseFactor(raw)
	if !ok {
		return "", fmt.Errorf("unknown factor: %s", raw)
	}
	return f, nil
}

func createSetChoice(table *calculation.ImpactTable, params map[string]string) (ProfileTransform, error) {
	f, err := requireFactor(params)
	if err != nil {
		return nil, err
	}
	choice, err := requireParam(params, "choice")
	if err != nil {
		return nil, err
	}
	return &SetChoice{Factor: f, Choice: domain.Choice(choice), Table: table}, nil
}

func createBestChoice(table *calculation.ImpactTable, params map[string]string) (ProfileTransform, error) {
	f, err := requireFactor(params)
	if err != nil {
		return nil, err
	}
	return &BestChoice{Factor: f, Table: table}, nil
}

func createWorstChoice(table *calculation.ImpactTable, params map[string]string) (ProfileTransform, error) {
	f, err := requireFactor(params)
	if err != nil {
		return nil, err
	}
	return &WorstChoice{Factor: f, Table: table}, nil
}

func createSetAge(_ *calculation.ImpactTable, params map[string]string) (ProfileTransform, error) {
	raw, err := requireParam(params, "age")
	if err != nil {
		return nil, err
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid age %q: %w", raw, err)
	}
	return &SetAge{Age: age}, nil
}

func createSetSex(_ *calculation.ImpactTable, params map[string]string) (ProfileTransform, error) {
	raw, err := requireParam(params, "sex")
	if err != nil {
		return nil, err
	}
	return &SetSex{Sex: domain.Sex(strings.ToLower(raw))}, nil
}

// ParseOverrides turns "factor=choice" pairs into Modifications. Choices are
// checked against the table so typos fail loudly at the command line.
func ParseOverrides(table *calculation.ImpactTable, pairs []string) (domain.Modifications, error) {
	table = tableOrDefault(table)
	mods := domain.Modifications{}
	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return domain.Modifications{}, fmt.Errorf("invalid override %q, expected factor=choice", pair)
		}
		key, value := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])

		switch key {
		case "age":
			age, err := strconv.Atoi(value)
			if err != nil {
				return domain.Modifications{}, fmt.Errorf("invalid age %q: %w", value, err)
			}
			if age < domain.MinAge || age > domain.MaxAge {
				return domain.Modifications{}, fmt.Errorf("age %d must be between %d and %d", age, domain.MinAge, domain.MaxAge)
			}
			mods.Age = &age
			continue
		case "sex":
			sex := domain.Sex(strings.ToLower(value))
			if !sex.Valid() {
				return domain.Modifications{}, fmt.Errorf("unknown sex %q", value)
			}
			mods.Sex = &sex
			continue
		}

		f, ok := domain.ParseFactor(key)
		if !ok {
			return domain.Modifications{}, fmt.Errorf("unknown factor %q", key)
		}
		if !table.HasChoice(f, domain.Choice(value)) {
			return domain.Modifications{}, fmt.Errorf("unknown choice %q for %s", value, f)
		}
		if mods.Choices == nil {
			mods.Choices = make(map[domain.Factor]domain.Choice)
		}
		mods.Choices[f] = domain.Choice(value)
	}
	return mods, nil
}
