package domain

import "encoding/json"

// LearningGoal is a free-text goal owned by exactly one LearningObject.
// Goals carry no validation; the owning object attaches itself as the
// goal's source when the goal is created or reloaded, and the source is
// never part of the serialized payload.
type LearningGoal struct {
	source *LearningObject
	text   string
}

func newLearningGoal(source *LearningObject, text string) *LearningGoal {
	return &LearningGoal{source: source, text: text}
}

// Source returns the learning object that owns this goal.
func (g *LearningGoal) Source() *LearningObject {
	return g.source
}

// Text returns the goal text.
func (g *LearningGoal) Text() string {
	return g.text
}

// SetText replaces the goal text. Goal text is unvalidated.
func (g *LearningGoal) SetText(text string) {
	g.text = text
}

type learningGoalJSON struct {
	Text string `json:"text"`
}

// MarshalJSON serializes the goal as {"text": ...}.
func (g *LearningGoal) MarshalJSON() ([]byte, error) {
	return json.Marshal(learningGoalJSON{Text: g.text})
}

// UnmarshalJSON restores the goal text. The owner back-reference is
// re-attached by the owning LearningObject, not by this method.
func (g *LearningGoal) UnmarshalJSON(data []byte) error {
	var raw learningGoalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.text = raw.Text
	return nil
}
