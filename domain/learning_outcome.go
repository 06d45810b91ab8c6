package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/onslate/entities/domain/taxonomy"
)

// LearningOutcome-specific validation errors
var (
	// ErrInvalidBloom is returned when a bloom value is not a recognized
	// taxonomy level.
	ErrInvalidBloom = errors.New("bloom is not a recognized taxonomy level")

	// ErrInvalidVerb is returned when a verb is outside the verb vocabulary
	// of the outcome's current bloom level.
	ErrInvalidVerb = errors.New("verb is not valid for the outcome's current bloom level")

	// ErrOutcomeTextEmpty is returned when outcome text is empty.
	ErrOutcomeTextEmpty = errors.New("outcome text cannot be empty")
)

// OutcomeSource is a snapshot of the owning learning object's author, name
// and date, captured when the outcome is constructed. It is a copy, not a
// live back-reference.
type OutcomeSource struct {
	Author string    `json:"author"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
}

// LearningOutcome is a taxonomy-constrained learning outcome owned by a
// LearningObject. It owns its assessment plans and instructional
// strategies, references (never owns) standard-outcome mappings, and
// carries a tag unique among its parent's outcomes.
type LearningOutcome struct {
	vocab       taxonomy.Provider
	id          string
	source      OutcomeSource
	tag         int
	bloom       string
	verb        string
	text        string
	mappings    []*StandardOutcome
	assessments []*AssessmentPlan
	strategies  []*InstructionalStrategy

	// extra holds serialized keys this version of the model does not
	// recognize, preserved verbatim across a round-trip.
	extra map[string]json.RawMessage
}

// NewLearningOutcome creates an outcome for the given parent object: it
// snapshots the parent's author/name/date, inherits the parent's taxonomy
// vocabulary, assigns the smallest tag not already used by the parent's
// outcomes, and defaults bloom and verb to the vocabulary's first entries.
//
// A nil parent yields a detached outcome with tag 0 and the default
// vocabulary.
func NewLearningOutcome(parent *LearningObject) *LearningOutcome {
	vocab := taxonomy.Provider(taxonomy.Default())
	var source OutcomeSource
	tag := 0

	if parent != nil {
		vocab = parent.vocab
		source = OutcomeSource{
			Name: parent.name,
			Date: parent.date,
		}
		if parent.author != nil {
			source.Author = parent.author.Name
		}
		tag = nextOutcomeTag(parent.outcomes)
	}

	bloom := firstBloom(vocab)
	return &LearningOutcome{
		vocab:       vocab,
		source:      source,
		tag:         tag,
		bloom:       bloom,
		verb:        firstVerb(vocab, bloom),
		mappings:    []*StandardOutcome{},
		assessments: []*AssessmentPlan{},
		strategies:  []*InstructionalStrategy{},
	}
}

// nextOutcomeTag finds the smallest non-negative tag not used by any of
// the given outcomes. On a collision it increments the candidate and
// rescans from the top of the list, which is quadratic in the worst case;
// outcome lists are small, human-authored collections.
func nextOutcomeTag(outcomes []*LearningOutcome) int {
	tag := 0
	for i := 0; i < len(outcomes); i++ {
		if outcomes[i].tag == tag {
			tag++
			i = -1
		}
	}
	return tag
}

// ID returns the identifier assigned by an external store, or "" if none
// has been assigned.
func (o *LearningOutcome) ID() string { return o.id }

// SetID records the identifier assigned by an external store. The model
// itself never generates outcome IDs.
func (o *LearningOutcome) SetID(id string) {
	o.id = id
}

// Source returns the parent snapshot captured at construction.
func (o *LearningOutcome) Source() OutcomeSource { return o.source }

// Tag returns the outcome's tag, unique among its parent's outcomes.
func (o *LearningOutcome) Tag() int { return o.tag }

// Bloom returns the outcome's bloom level.
func (o *LearningOutcome) Bloom() string { return o.bloom }

// Verb returns the outcome's verb.
func (o *LearningOutcome) Verb() string { return o.verb }

// Text returns the outcome text.
func (o *LearningOutcome) Text() string { return o.text }

// SetBloom sets the outcome's bloom level. An already-set verb is not
// re-validated against the new level; plans and strategies created before
// the change keep validating against their construction-time snapshot.
func (o *LearningOutcome) SetBloom(bloom string) error {
	if !o.vocab.HasBloom(bloom) {
		return ErrInvalidBloom
	}
	o.bloom = bloom
	return nil
}

// SetVerb sets the outcome's verb. The verb must belong to the verb
// vocabulary of the bloom level current at assignment time.
func (o *LearningOutcome) SetVerb(verb string) error {
	if !o.vocab.HasVerb(o.bloom, verb) {
		return ErrInvalidVerb
	}
	o.verb = verb
	return nil
}

// SetText sets the outcome text. The value is trimmed and must be
// non-empty.
func (o *LearningOutcome) SetText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrOutcomeTextEmpty
	}
	o.text = trimmed
	return nil
}

// Mappings returns the outcome's standard-outcome references in order.
// The returned slice is a copy; the referenced standards are shared.
func (o *LearningOutcome) Mappings() []*StandardOutcome {
	out := make([]*StandardOutcome, len(o.mappings))
	copy(out, o.mappings)
	return out
}

// MapTo appends a reference to the given standard outcome and returns its
// 0-based index. Duplicates are allowed; mappings are references only.
func (o *LearningOutcome) MapTo(standard *StandardOutcome) int {
	o.mappings = append(o.mappings, standard)
	return len(o.mappings) - 1
}

// Unmap removes and returns the mapping at the given index, or nil if the
// index is out of range.
func (o *LearningOutcome) Unmap(index int) *StandardOutcome {
	if index < 0 || index >= len(o.mappings) {
		return nil
	}
	removed := o.mappings[index]
	o.mappings = append(o.mappings[:index], o.mappings[index+1:]...)
	return removed
}

// Assessments returns the outcome's assessment plans in order. The
// returned slice is a copy.
func (o *LearningOutcome) Assessments() []*AssessmentPlan {
	out := make([]*AssessmentPlan, len(o.assessments))
	copy(out, o.assessments)
	return out
}

// AddAssessment creates an assessment plan with a snapshot of the
// outcome's current bloom level, appends it, and returns its 0-based
// index.
func (o *LearningOutcome) AddAssessment() int {
	o.assessments = append(o.assessments, newAssessmentPlan(o.vocab, o.bloom))
	return len(o.assessments) - 1
}

// RemoveAssessment removes and returns the assessment plan at the given
// index, or nil if the index is out of range.
func (o *LearningOutcome) RemoveAssessment(index int) *AssessmentPlan {
	if index < 0 || index >= len(o.assessments) {
		return nil
	}
	removed := o.assessments[index]
	o.assessments = append(o.assessments[:index], o.assessments[index+1:]...)
	return removed
}

// Strategies returns the outcome's instructional strategies in order. The
// returned slice is a copy.
func (o *LearningOutcome) Strategies() []*InstructionalStrategy {
	out := make([]*InstructionalStrategy, len(o.strategies))
	copy(out, o.strategies)
	return out
}

// AddStrategy creates an instructional strategy with a snapshot of the
// outcome's current bloom level, appends it, and returns its 0-based
// index.
func (o *LearningOutcome) AddStrategy() int {
	o.strategies = append(o.strategies, newInstructionalStrategy(o.vocab, o.bloom))
	return len(o.strategies) - 1
}

// RemoveStrategy removes and returns the strategy at the given index, or
// nil if the index is out of range.
func (o *LearningOutcome) RemoveStrategy(index int) *InstructionalStrategy {
	if index < 0 || index >= len(o.strategies) {
		return nil
	}
	removed := o.strategies[index]
	o.strategies = append(o.strategies[:index], o.strategies[index+1:]...)
	return removed
}

// Keys the serializer owns; everything else in a payload is preserved in
// the residual bag.
var learningOutcomeKeys = map[string]bool{
	"id":          true,
	"source":      true,
	"tag":         true,
	"bloom":       true,
	"verb":        true,
	"text":        true,
	"mappings":    true,
	"assessments": true,
	"strategies":  true,
}

// MarshalJSON serializes the outcome's public fields plus any residual
// keys preserved from a previous deserialization.
func (o *LearningOutcome) MarshalJSON() ([]byte, error) {
	payload := make(map[string]interface{}, len(learningOutcomeKeys)+len(o.extra))
	for key, value := range o.extra {
		payload[key] = value
	}

	if o.id != "" {
		payload["id"] = o.id
	}
	payload["source"] = o.source
	payload["tag"] = o.tag
	payload["bloom"] = o.bloom
	payload["verb"] = o.verb
	payload["text"] = o.text
	payload["mappings"] = o.mappings
	payload["assessments"] = o.assessments
	payload["strategies"] = o.strategies

	return json.Marshal(payload)
}

// UnmarshalLearningOutcome reconstructs an outcome from its serialized
// form in the context of the given parent. Tag, bloom, verb and text are
// restored directly from the payload; assessments and strategies are
// rebuilt through their own reconstruction paths, which re-validate kinds
// against the current vocabulary; unrecognized keys are kept verbatim.
func UnmarshalLearningOutcome(data []byte, parent *LearningObject) (*LearningOutcome, error) {
	o := NewLearningOutcome(parent)
	if err := o.unmarshalInto(data); err != nil {
		return nil, err
	}
	return o, nil
}

// UnmarshalJSON reconstructs a detached outcome (no parent context). The
// owning LearningObject reconstructs its outcomes through
// UnmarshalLearningOutcome instead.
func (o *LearningOutcome) UnmarshalJSON(data []byte) error {
	if o.vocab == nil {
		fresh := NewLearningOutcome(nil)
		*o = *fresh
	}
	return o.unmarshalInto(data)
}

func (o *LearningOutcome) unmarshalInto(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &o.id); err != nil {
			return err
		}
	}
	if v, ok := raw["source"]; ok {
		if err := json.Unmarshal(v, &o.source); err != nil {
			return err
		}
	}
	if v, ok := raw["tag"]; ok {
		if err := json.Unmarshal(v, &o.tag); err != nil {
			return err
		}
	}
	if v, ok := raw["bloom"]; ok {
		if err := json.Unmarshal(v, &o.bloom); err != nil {
			return err
		}
	}
	if v, ok := raw["verb"]; ok {
		if err := json.Unmarshal(v, &o.verb); err != nil {
			return err
		}
	}
	if v, ok := raw["text"]; ok {
		var text string
		if err := json.Unmarshal(v, &text); err != nil {
			return err
		}
		o.text = strings.TrimSpace(text)
	}

	if v, ok := raw["mappings"]; ok {
		var mappings []json.RawMessage
		if err := json.Unmarshal(v, &mappings); err != nil {
			return err
		}
		for _, m := range mappings {
			standard := NewStandardOutcome()
			if err := json.Unmarshal(m, standard); err != nil {
				return err
			}
			o.MapTo(standard)
		}
	}

	if v, ok := raw["assessments"]; ok {
		var assessments []json.RawMessage
		if err := json.Unmarshal(v, &assessments); err != nil {
			return err
		}
		for _, a := range assessments {
			plan, err := unmarshalAssessmentPlan(a, o.vocab, o.bloom)
			if err != nil {
				return err
			}
			o.assessments = append(o.assessments, plan)
		}
	}

	if v, ok := raw["strategies"]; ok {
		var strategies []json.RawMessage
		if err := json.Unmarshal(v, &strategies); err != nil {
			return err
		}
		for _, s := range strategies {
			strategy, err := unmarshalInstructionalStrategy(s, o.vocab, o.bloom)
			if err != nil {
				return err
			}
			o.strategies = append(o.strategies, strategy)
		}
	}

	for key, value := range raw {
		if learningOutcomeKeys[key] {
			continue
		}
		if o.extra == nil {
			o.extra = make(map[string]json.RawMessage)
		}
		o.extra[key] = value
	}

	return nil
}

func firstBloom(vocab taxonomy.Provider) string {
	blooms := vocab.Blooms()
	if len(blooms) == 0 {
		return ""
	}
	return blooms[0]
}

func firstVerb(vocab taxonomy.Provider, bloom string) string {
	verbs := vocab.Verbs(bloom)
	if len(verbs) == 0 {
		return ""
	}
	return verbs[0]
}
