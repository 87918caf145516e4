package transform

import (
	"fmt"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
)

// ProfileTransform defines the interface for all profile transformations.
// Transforms are composable what-if edits used to build comparison profiles.
type ProfileTransform interface {
	// Apply returns a new profile; the input is never modified.
	Apply(base domain.Profile) (domain.Profile, error)

	// Name returns a short identifier for this transform (e.g., "set_choice").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform parameters without applying it.
	Validate(base domain.Profile) error
}

// ApplyTransforms applies a sequence of transforms to a base profile.
// Each transform receives the output of the previous one.
func ApplyTransforms(base domain.Profile, transforms []ProfileTransform) (domain.Profile, error) {
	current := base
	for i, transform := range transforms {
		if transform == nil {
			return base, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return base, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return base, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}
		current = next
	}
	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

func tableOrDefault(t *calculation.ImpactTable) *calculation.ImpactTable {
	if t == nil {
		return calculation.DefaultTable
	}
	return t
}

// SetChoice moves one factor to a specific choice
type SetChoice struct {
	Factor domain.Factor
	Choice domain.Choice
	Table  *calculation.ImpactTable
}

func (t *SetChoice) Name() string { return "set_choice" }

func (t *SetChoice) Description() string {
	return fmt.Sprintf("Set %s to %s",
		calculation.FactorName(t.Factor), calculation.ChoiceLabel(t.Factor, t.Choice))
}

func (t *SetChoice) Validate(base domain.Profile) error {
	if _, ok := domain.ParseFactor(string(t.Factor)); !ok {
		return &TransformError{TransformName: t.Name(), Operation: "validate",
			Reason: fmt.Sprintf("unknown factor %q", t.Factor)}
	}
	if !tableOrDefault(t.Table).HasChoice(t.Factor, t.Choice) {
		return &TransformError{TransformName: t.Name(), Operation: "validate",
			Reason: fmt.Sprintf("unknown choice %q for %s", t.Choice, t.Factor)}
	}
	return nil
}

func (t *SetChoice) Apply(base domain.Profile) (domain.Profile, error) {
	return base.With(t.Factor, t.Choice), nil
}

// BestChoice moves a factor to its highest-impact choice
type BestChoice struct {
	Factor domain.Factor
	Table  *calculation.ImpactTable
}

func (t *BestChoice) Name() string { return "best_choice" }

func (t *BestChoice) Description() string {
	return fmt.Sprintf("Move %s to its best choice", calculation.FactorName(t.Factor))
}

func (t *BestChoice) Validate(base domain.Profile) error {
	if _, ok := tableOrDefault(t.Table).BestChoice(t.Factor); !ok {
		return &TransformError{TransformName: t.Name(), Operation: "validate",
			Reason: fmt.Sprintf("unknown factor %q", t.Factor)}
	}
	return nil
}

func (t *BestChoice) Apply(base domain.Profile) (domain.Profile, error) {
	best, ok := tableOrDefault(t.Table).BestChoice(t.Factor)
	if !ok {
		return base, &TransformError{TransformName: t.Name(), Operation: "apply",
			Reason: fmt.Sprintf("unknown factor %q", t.Factor)}
	}
	return base.With(t.Factor, best.Choice), nil
}

// WorstChoice moves a factor to its lowest-impact choice
type WorstChoice struct {
	Factor domain.Factor
	Table  *calculation.ImpactTable
}

func (t *WorstChoice) Name() string { return "worst_choice" }

func (t *WorstChoice) Description() string {
	return fmt.Sprintf("Move %s to its worst choice", calculation.FactorName(t.Factor))
}

func (t *WorstChoice) Validate(base domain.Profile) error {
	if _, ok := tableOrDefault(t.Table).WorstChoice(t.Factor); !ok {
		return &TransformError{TransformName: t.Name(), Operation: "validate",
			Reason: fmt.Sprintf("unknown factor %q", t.Factor)}
	}
	return nil
}

func (t *WorstChoice) Apply(base domain.Profile) (domain.Profile, error) {
	worst, ok := tableOrDefault(t.Table).WorstChoice(t.Factor)
	if !ok {
		return base, &TransformError{TransformName: t.Name(), Operation: "apply",
			Reason: fmt.Sprintf("unknown factor %q", t.Factor)}
	}
	return base.With(t.Factor, worst.Choice), nil
}

// SetAge changes the profile's age
type SetAge struct {
	Age int
}

func (t *SetAge) Name() string { return "set_age" }

func (t *SetAge) Description() string { return fmt.Sprintf("Set age to %d", t.Age) }

func (t *SetAge) Validate(base domain.Profile) error {
	if t.Age < domain.MinAge || t.Age > domain.MaxAge {
		return &TransformError{TransformName: t.Name(), Operation: "validate",
			Reason: fmt.Sprintf("age %d outside %d-%d", t.Age, domain.MinAge, domain.MaxAge)}
	}
	return nil
}

func (t *SetAge) Apply(base domain.Profile) (domain.Profile, error) {
	base.Age = t.Age
	return base, nil
}

// SetSex changes the profile's sex
type SetSex struct {
	Sex domain.Sex
}

func (t *SetSex) Name() string { return "set_sex" }

func (t *SetSex) Description() string { return fmt.Sprintf("Set sex to %s", t.Sex) }

func (t *SetSex) Validate(base domain.Profile) error {
	if !t.Sex.Valid() {
		return &TransformError{TransformName: t.Name(), Operation: "validate",
			Reason: fmt.Sprintf("unknown sex %q", t.Sex)}
	}
	return nil
}

func (t *SetSex) Apply(base domain.Profile) (domain.Profile, error) {
	base.Sex = t.Sex
	return base, nil
}
