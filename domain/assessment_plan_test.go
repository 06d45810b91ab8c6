package domain

import (
	"testing"

	"github.com/onslate/entities/domain/taxonomy"
)

func TestAssessmentPlanDefaults(t *testing.T) {
	t.Parallel()
	plan := newAssessmentPlan(taxonomy.Default(), "remember")

	if plan.SourceBloom() != "remember" {
		t.Errorf("Expected source bloom %q, got %q", "remember", plan.SourceBloom())
	}

	// Kind defaults to the first entry of the level's vocabulary.
	if plan.Kind() != "quiz" {
		t.Errorf("Expected default kind %q, got %q", "quiz", plan.Kind())
	}

	if plan.Text() != "" {
		t.Errorf("Expected empty default text, got %q", plan.Text())
	}
}

func TestAssessmentPlanSetKind(t *testing.T) {
	t.Parallel()
	plan := newAssessmentPlan(taxonomy.Default(), "remember")

	if err := plan.SetKind("matching"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := plan.SetKind("portfolio"); err != ErrInvalidPlanKind {
		t.Errorf("Expected error %v, got %v", ErrInvalidPlanKind, err)
	}

	if plan.Kind() != "matching" {
		t.Errorf("Expected kind unchanged at %q, got %q", "matching", plan.Kind())
	}
}

func TestAssessmentPlanSetText(t *testing.T) {
	t.Parallel()
	plan := newAssessmentPlan(taxonomy.Default(), "remember")

	if err := plan.SetText("  ten-question vocabulary quiz  "); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if plan.Text() != "ten-question vocabulary quiz" {
		t.Errorf("Expected trimmed text, got %q", plan.Text())
	}

	if err := plan.SetText("   "); err != ErrPlanTextEmpty {
		t.Errorf("Expected error %v, got %v", ErrPlanTextEmpty, err)
	}
}

func TestInstructionalStrategySetKind(t *testing.T) {
	t.Parallel()
	strategy := newInstructionalStrategy(taxonomy.Default(), "understand")

	if strategy.Kind() != "concept map" {
		t.Errorf("Expected default kind %q, got %q", "concept map", strategy.Kind())
	}

	if err := strategy.SetKind("discussion"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := strategy.SetKind("lab"); err != ErrInvalidStrategyKind {
		t.Errorf("Expected error %v, got %v", ErrInvalidStrategyKind, err)
	}
}

func TestInstructionalStrategySetText(t *testing.T) {
	t.Parallel()
	strategy := newInstructionalStrategy(taxonomy.Default(), "understand")

	if err := strategy.SetText(""); err != ErrStrategyTextEmpty {
		t.Errorf("Expected error %v, got %v", ErrStrategyTextEmpty, err)
	}

	if err := strategy.SetText("think-pair-share on sorting tradeoffs"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestUnmarshalPlanRevalidatesKind(t *testing.T) {
	t.Parallel()
	vocab := taxonomy.Default()

	// A payload saved under a vocabulary where "quiz" was legal for the
	// apply level fails to reload once the vocabulary no longer allows it.
	if _, err := unmarshalAssessmentPlan([]byte(`{"plan": "quiz", "text": "t"}`), vocab, "apply"); err != ErrInvalidPlanKind {
		t.Errorf("Expected error %v, got %v", ErrInvalidPlanKind, err)
	}

	plan, err := unmarshalAssessmentPlan([]byte(`{"plan": "lab", "text": "wet lab"}`), vocab, "apply")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if plan.Kind() != "lab" || plan.Text() != "wet lab" {
		t.Errorf("Expected reloaded plan fields, got kind %q text %q", plan.Kind(), plan.Text())
	}
}
