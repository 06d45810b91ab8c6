package domain

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/onslate/entities/domain/taxonomy"
)

// AssessmentPlan-specific validation errors
var (
	// ErrInvalidPlanKind is returned when a plan kind is outside the
	// assessment-kind vocabulary of the plan's source bloom level.
	ErrInvalidPlanKind = errors.New("assessment plan kind is not valid for the source bloom level")

	// ErrPlanTextEmpty is returned when assessment plan text is empty.
	ErrPlanTextEmpty = errors.New("assessment plan text cannot be empty")
)

// AssessmentPlan describes how an outcome is assessed. Each plan is owned
// by exactly one LearningOutcome and captures the outcome's bloom level at
// construction time; the kind vocabulary is frozen to that snapshot, so a
// later bloom change on the owning outcome does not re-constrain plans
// that already exist.
type AssessmentPlan struct {
	vocab       taxonomy.Provider
	sourceBloom string
	kind        string
	text        string
}

func newAssessmentPlan(vocab taxonomy.Provider, sourceBloom string) *AssessmentPlan {
	return &AssessmentPlan{
		vocab:       vocab,
		sourceBloom: sourceBloom,
		kind:        firstKind(vocab, sourceBloom),
	}
}

// SourceBloom returns the bloom level snapshot captured at construction.
func (p *AssessmentPlan) SourceBloom() string { return p.sourceBloom }

// Kind returns the plan kind.
func (p *AssessmentPlan) Kind() string { return p.kind }

// Text returns the plan text.
func (p *AssessmentPlan) Text() string { return p.text }

// SetKind sets the plan kind. The kind must belong to the assessment-kind
// vocabulary of the source bloom snapshot.
func (p *AssessmentPlan) SetKind(kind string) error {
	if !p.vocab.HasKind(p.sourceBloom, kind) {
		return ErrInvalidPlanKind
	}
	p.kind = kind
	return nil
}

// SetText sets the plan text. The value is trimmed and must be non-empty.
func (p *AssessmentPlan) SetText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrPlanTextEmpty
	}
	p.text = trimmed
	return nil
}

type assessmentPlanJSON struct {
	Plan string `json:"plan"`
	Text string `json:"text"`
}

// MarshalJSON serializes the plan as {"plan": kind, "text": text}. The
// source bloom is not part of the payload; it is re-derived from the
// owning outcome at reconstruction time.
func (p *AssessmentPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(assessmentPlanJSON{Plan: p.kind, Text: p.text})
}

// unmarshalAssessmentPlan reconstructs a plan in the context of its owning
// outcome's current bloom level. The kind is re-validated against the
// current vocabulary, so a payload saved under an older vocabulary can
// fail to reload.
func unmarshalAssessmentPlan(
	data []byte,
	vocab taxonomy.Provider,
	sourceBloom string,
) (*AssessmentPlan, error) {
	var raw assessmentPlanJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	plan := newAssessmentPlan(vocab, sourceBloom)
	if raw.Plan != "" {
		if err := plan.SetKind(raw.Plan); err != nil {
			return nil, err
		}
	}
	if raw.Text != "" {
		if err := plan.SetText(raw.Text); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

func firstKind(vocab taxonomy.Provider, bloom string) string {
	kinds := vocab.Kinds(bloom)
	if len(kinds) == 0 {
		return ""
	}
	return kinds[0]
}
