package domain

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/onslate/entities/domain/taxonomy"
)

// InstructionalStrategy-specific validation errors
var (
	// ErrInvalidStrategyKind is returned when a strategy kind is outside
	// the kind vocabulary of the strategy's source bloom level.
	ErrInvalidStrategyKind = errors.New("instructional strategy kind is not valid for the source bloom level")

	// ErrStrategyTextEmpty is returned when strategy text is empty.
	ErrStrategyTextEmpty = errors.New("instructional strategy text cannot be empty")
)

// InstructionalStrategy describes how an outcome is taught. Like
// AssessmentPlan, it is owned by exactly one LearningOutcome and validates
// its kind against the bloom level snapshot captured when it was created.
type InstructionalStrategy struct {
	vocab       taxonomy.Provider
	sourceBloom string
	kind        string
	text        string
}

func newInstructionalStrategy(vocab taxonomy.Provider, sourceBloom string) *InstructionalStrategy {
	return &InstructionalStrategy{
		vocab:       vocab,
		sourceBloom: sourceBloom,
		kind:        firstKind(vocab, sourceBloom),
	}
}

// SourceBloom returns the bloom level snapshot captured at construction.
func (s *InstructionalStrategy) SourceBloom() string { return s.sourceBloom }

// Kind returns the strategy kind.
func (s *InstructionalStrategy) Kind() string { return s.kind }

// Text returns the strategy text.
func (s *InstructionalStrategy) Text() string { return s.text }

// SetKind sets the strategy kind. The kind must belong to the kind
// vocabulary of the source bloom snapshot.
func (s *InstructionalStrategy) SetKind(kind string) error {
	if !s.vocab.HasKind(s.sourceBloom, kind) {
		return ErrInvalidStrategyKind
	}
	s.kind = kind
	return nil
}

// SetText sets the strategy text. The value is trimmed and must be
// non-empty.
func (s *InstructionalStrategy) SetText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrStrategyTextEmpty
	}
	s.text = trimmed
	return nil
}

type instructionalStrategyJSON struct {
	Strategy string `json:"strategy"`
	Text     string `json:"text"`
}

// MarshalJSON serializes the strategy as {"strategy": kind, "text": text}.
// The source bloom is re-derived from the owning outcome on reconstruction.
func (s *InstructionalStrategy) MarshalJSON() ([]byte, error) {
	return json.Marshal(instructionalStrategyJSON{Strategy: s.kind, Text: s.text})
}

// unmarshalInstructionalStrategy reconstructs a strategy in the context of
// its owning outcome's current bloom level, re-validating the kind.
func unmarshalInstructionalStrategy(
	data []byte,
	vocab taxonomy.Provider,
	sourceBloom string,
) (*InstructionalStrategy, error) {
	var raw instructionalStrategyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	strategy := newInstructionalStrategy(vocab, sourceBloom)
	if raw.Strategy != "" {
		if err := strategy.SetKind(raw.Strategy); err != nil {
			return nil, err
		}
	}
	if raw.Text != "" {
		if err := strategy.SetText(raw.Text); err != nil {
			return nil, err
		}
	}

	return strategy, nil
}
