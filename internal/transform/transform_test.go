package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
)

func TestApplyTransforms_Empty(t *testing.T) {
	base := domain.DefaultProfile()

	result, err := ApplyTransforms(base, nil)
	if err != nil {
		t.Fatalf("Expected no error for empty transforms, got: %v", err)
	}
	if result != base {
		t.Error("Expected profile to be unchanged")
	}
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(domain.DefaultProfile(), []ProfileTransform{nil})
	if err == nil {
		t.Fatal("Expected error for nil transform")
	}
}

func TestApplyTransforms_Chained(t *testing.T) {
	base := domain.DefaultProfile()
	transforms := []ProfileTransform{
		&SetChoice{Factor: domain.FactorSmoking, Choice: domain.SmokingCurrent},
		&SetChoice{Factor: domain.FactorSmoking, Choice: domain.SmokingFormer},
		&SetAge{Age: 45},
	}

	result, err := ApplyTransforms(base, transforms)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Smoking != domain.SmokingFormer {
		t.Errorf("Expected last transform to win, got %s", result.Smoking)
	}
	if result.Age != 45 {
		t.Errorf("Expected age 45, got %d", result.Age)
	}
	if base.Smoking != domain.SmokingNever || base.Age != domain.DefaultAge {
		t.Error("Base profile was modified")
	}
}

func TestApplyTransforms_ValidationFailureReturnsBase(t *testing.T) {
	base := domain.DefaultProfile()
	transforms := []ProfileTransform{
		&SetChoice{Factor: domain.FactorDiet, Choice: domain.DietPoor},
		&SetChoice{Factor: domain.FactorDiet, Choice: "deep-fried"},
	}

	result, err := ApplyTransforms(base, transforms)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if result != base {
		t.Error("Expected base profile on failure")
	}

	var te *TransformError
	if !errors.As(err, &te) {
		t.Fatalf("Expected TransformError in chain, got %T", err)
	}
	if te.TransformName != "set_choice" {
		t.Errorf("Expected set_choice, got %s", te.TransformName)
	}
}

func TestSetChoice_Validate(t *testing.T) {
	tests := []struct {
		name    string
		factor  domain.Factor
		choice  domain.Choice
		wantErr bool
	}{
		{"valid", domain.FactorBMI, domain.BMIObese, false},
		{"unknown factor", "height", "tall", true},
		{"choice from another factor", domain.FactorSleep, domain.StressLow, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &SetChoice{Factor: tt.factor, Choice: tt.choice}
			err := tr.Validate(domain.DefaultProfile())
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBestAndWorstChoice(t *testing.T) {
	base := domain.DefaultProfile()

	best, err := (&BestChoice{Factor: domain.FactorAlcohol}).Apply(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if best.Alcohol != domain.AlcoholNone {
		t.Errorf("Expected none, got %s", best.Alcohol)
	}

	worst, err := (&WorstChoice{Factor: domain.FactorSmoking}).Apply(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if worst.Smoking != domain.SmokingCurrent {
		t.Errorf("Expected current, got %s", worst.Smoking)
	}

	if err := (&BestChoice{Factor: "height"}).Validate(base); err == nil {
		t.Error("Expected error for unknown factor")
	}
}

func TestSetAgeAndSex(t *testing.T) {
	base := domain.DefaultProfile()

	if err := (&SetAge{Age: 121}).Validate(base); err == nil {
		t.Error("Expected error for age above range")
	}
	if err := (&SetAge{Age: -1}).Validate(base); err == nil {
		t.Error("Expected error for negative age")
	}
	if err := (&SetSex{Sex: "other"}).Validate(base); err == nil {
		t.Error("Expected error for unknown sex")
	}

	p, err := ApplyTransforms(base, []ProfileTransform{&SetAge{Age: 0}, &SetSex{Sex: domain.SexFemale}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Age != 0 || p.Sex != domain.SexFemale {
		t.Errorf("Got age %d sex %s", p.Age, p.Sex)
	}
}

func TestTransformDescriptions(t *testing.T) {
	tr := &SetChoice{Factor: domain.FactorSmoking, Choice: domain.SmokingNever}
	if got := tr.Description(); got != "Set Smoking to Never Smoked" {
		t.Errorf("Unexpected description: %s", got)
	}
	if !strings.Contains((&BestChoice{Factor: domain.FactorDiet}).Description(), "Diet") {
		t.Error("Expected factor display name in description")
	}
}

func TestTransformError(t *testing.T) {
	inner := errors.New("boom")
	err := &TransformError{TransformName: "set_age", Operation: "apply", Reason: "bad", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("Expected Unwrap to expose inner error")
	}
	if !strings.Contains(err.Error(), "set_age (apply): bad: boom") {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestTransformRegistry(t *testing.T) {
	registry := NewTransformRegistry(nil)

	names := registry.List()
	expected := []string{"best_choice", "set_age", "set_choice", "set_sex", "worst_choice"}
	if strings.Join(names, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected %v, got %v", expected, names)
	}

	tr, err := registry.ParseTransformSpec("set_choice:factor=diet,choice=good")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	p, err := tr.Apply(domain.DefaultProfile())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Diet != domain.DietGood {
		t.Errorf("Expected good diet, got %s", p.Diet)
	}

	badSpecs := []string{
		"set_choice",
		"unknown:factor=diet",
		"set_choice:factor=diet",
		"best_choice:factor=height",
		"set_age:age=old",
		"set_choice:factor",
	}
	for _, spec := range badSpecs {
		if _, err := registry.ParseTransformSpec(spec); err == nil {
			t.Errorf("Expected error for spec %q", spec)
		}
	}
}

func TestParseOverrides(t *testing.T) {
	mods, err := ParseOverrides(nil, []string{"smoking=current", " diet = poor ", "age=50", "sex=Female"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mods.Choices[domain.FactorSmoking] != domain.SmokingCurrent {
		t.Error("Expected smoking override")
	}
	if mods.Choices[domain.FactorDiet] != domain.DietPoor {
		t.Error("Expected diet override")
	}
	if mods.Age == nil || *mods.Age != 50 {
		t.Error("Expected age override")
	}
	if mods.Sex == nil || *mods.Sex != domain.SexFemale {
		t.Error("Expected sex override")
	}

	for _, bad := range [][]string{{"smoking"}, {"height=tall"}, {"smoking=sometimes"}, {"age=x"}, {"age=500"}, {"age=-1"}, {"sex=robot"}} {
		if _, err := ParseOverrides(calculation.DefaultTable, bad); err == nil {
			t.Errorf("Expected error for %v", bad)
		}
	}

	if _, err := ParseOverrides(nil, []string{"age=500"}); err == nil || !strings.Contains(err.Error(), "age 500 must be between 0 and 120") {
		t.Errorf("Expected age range error, got %v", err)
	}
	if mods, err := ParseOverrides(nil, []string{"age=120"}); err != nil || *mods.Age != 120 {
		t.Errorf("Expected boundary age to be accepted, got %v", err)
	}

	empty, err := ParseOverrides(nil, nil)
	if err != nil || !empty.IsZero() {
		t.Error("Expected zero modifications for no overrides")
	}
}

func TestTransformRegistry_ParseTransformSpecs(t *testing.T) {
	registry := NewTransformRegistry(nil)

	transforms, err := registry.ParseTransformSpecs([]string{
		"set_choice:factor=diet,choice=good",
		"best_choice:factor=sleep",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(transforms) != 2 {
		t.Fatalf("Expected 2 transforms, got %d", len(transforms))
	}

	p, err := ApplyTransforms(domain.DefaultProfile(), transforms)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Diet != domain.DietGood || p.Sleep != domain.SleepOptimal {
		t.Errorf("Got diet %s sleep %s", p.Diet, p.Sleep)
	}

	if _, err := registry.ParseTransformSpecs([]string{"best_choice:factor=sleep", "teleport:to=mars"}); err == nil {
		t.Error("Expected error for unknown transform")
	}
}
