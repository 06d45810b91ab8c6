package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/onslate/entities/domain/taxonomy"
)

// Length classifies how much instruction a learning object carries.
type Length string

// Possible length values, smallest to largest.
const (
	LengthNanomodule  Length = "nanomodule"
	LengthMicromodule Length = "micromodule"
	LengthModule      Length = "module"
	LengthUnit        Length = "unit"
	LengthCourse      Length = "course"
)

// Status represents a learning object's review lifecycle state.
type Status string

// Possible status values.
const (
	StatusUnpublished Status = "unpublished"
	StatusWaiting     Status = "waiting"
	StatusReviewed    Status = "reviewed"
	StatusPublished   Status = "published"
	StatusDenied      Status = "denied"
)

// Restriction is an access restriction kind carried by a Lock.
type Restriction string

// Possible restriction values.
const (
	RestrictionFull     Restriction = "full"
	RestrictionPublish  Restriction = "publish"
	RestrictionDownload Restriction = "download"
)

// Lock restricts what can be done with a learning object until the given
// expiry date.
type Lock struct {
	Date         time.Time     `json:"date"`
	Restrictions []Restriction `json:"restrictions"`
}

// LearningObject-specific validation errors
var (
	// ErrInvalidLength is returned when a length is outside the fixed
	// five-value set.
	ErrInvalidLength = errors.New("invalid learning object length")

	// ErrInvalidStatus is returned when a status is outside the fixed
	// five-value set.
	ErrInvalidStatus = errors.New("invalid learning object status")

	// ErrInvalidLevel is returned when an academic level is not in the
	// taxonomy vocabulary.
	ErrInvalidLevel = errors.New("academic level is not a recognized taxonomy level")

	// ErrLevelAlreadyExists is returned when an academic level is added
	// twice.
	ErrLevelAlreadyExists = errors.New("academic level already exists on the learning object")

	// ErrLevelsEmpty is returned when a removal would leave the learning
	// object with no academic levels.
	ErrLevelsEmpty = errors.New("learning object must have at least one academic level")

	// ErrChildCycle is returned when adding a child would make a learning
	// object its own descendant.
	ErrChildCycle = errors.New("learning object cannot contain itself as a descendant")

	// ErrNilChild is returned when a nil child is added to a learning
	// object.
	ErrNilChild = errors.New("child learning object cannot be nil")

	// ErrInvalidRestriction is returned when a lock carries an unknown
	// restriction kind.
	ErrInvalidRestriction = errors.New("invalid lock restriction")
)

// LearningObject is the aggregate root of the content hierarchy. It owns
// its goals, outcomes and child objects, references its author and
// contributors, and keeps a last-modified date that every content
// mutation advances. Accessors validate before mutating; a returned error
// always means the object was left unchanged.
type LearningObject struct {
	vocab        taxonomy.Provider
	author       *User
	name         string
	date         time.Time
	length       Length
	levels       []string
	goals        []*LearningGoal
	outcomes     []*LearningOutcome
	material     Material
	metrics      Metrics
	children     []*LearningObject
	contributors []*User
	collection   string
	status       Status
	published    bool
	lock         *Lock
}

// NewLearningObject creates a learning object with the default taxonomy
// vocabulary. The author is immutable after construction; the name is
// trimmed. Length, levels and status start at their documented defaults.
func NewLearningObject(author *User, name string) *LearningObject {
	return NewLearningObjectWithVocabulary(author, name, taxonomy.Default())
}

// NewLearningObjectWithVocabulary creates a learning object validating
// against the given vocabulary. Outcomes created for this object inherit
// the same vocabulary.
func NewLearningObjectWithVocabulary(
	author *User,
	name string,
	vocab taxonomy.Provider,
) *LearningObject {
	lo := &LearningObject{
		vocab:        vocab,
		author:       author,
		name:         strings.TrimSpace(name),
		date:         time.Now().UTC(),
		length:       LengthNanomodule,
		goals:        []*LearningGoal{},
		outcomes:     []*LearningOutcome{},
		children:     []*LearningObject{},
		contributors: []*User{},
		status:       StatusUnpublished,
	}
	lo.levels = []string{defaultAcademicLevel(vocab)}
	return lo
}

// touch advances the last-modified date. The date is strictly monotonic
// even when the clock has not advanced between mutations.
func (lo *LearningObject) touch() {
	now := time.Now().UTC()
	if !now.After(lo.date) {
		now = lo.date.Add(time.Nanosecond)
	}
	lo.date = now
}

// Author returns the object's author. The author cannot be changed after
// construction.
func (lo *LearningObject) Author() *User { return lo.author }

// Name returns the object's name.
func (lo *LearningObject) Name() string { return lo.name }

// Date returns the last-modified date. It is derived from mutations and
// cannot be set directly.
func (lo *LearningObject) Date() time.Time { return lo.date }

// Length returns the object's length classification.
func (lo *LearningObject) Length() Length { return lo.length }

// Collection returns the free-text grouping label.
func (lo *LearningObject) Collection() string { return lo.collection }

// Status returns the review lifecycle status.
func (lo *LearningObject) Status() Status { return lo.status }

// Published reports whether the object is currently published.
func (lo *LearningObject) Published() bool { return lo.published }

// Metrics returns the usage counters.
func (lo *LearningObject) Metrics() Metrics { return lo.metrics }

// Material returns a deep copy of the attached media metadata, so callers
// cannot mutate it behind the object's back.
func (lo *LearningObject) Material() Material {
	return cloneMaterial(lo.material)
}

// Lock returns a copy of the current lock record, or nil when unlocked.
func (lo *LearningObject) Lock() *Lock {
	if lo.lock == nil {
		return nil
	}
	out := Lock{Date: lo.lock.Date, Restrictions: make([]Restriction, len(lo.lock.Restrictions))}
	copy(out.Restrictions, lo.lock.Restrictions)
	return &out
}

// SetName replaces the object's name with the trimmed input and advances
// the date. An empty name is legal.
func (lo *LearningObject) SetName(name string) {
	lo.name = strings.TrimSpace(name)
	lo.touch()
}

// SetLength sets the length classification. The value must be one of the
// five defined lengths.
func (lo *LearningObject) SetLength(length Length) error {
	if !isValidLength(length) {
		return ErrInvalidLength
	}
	lo.length = length
	lo.touch()
	return nil
}

// Levels returns the object's academic levels in order. The returned
// slice is a copy; the set is never empty.
func (lo *LearningObject) Levels() []string {
	out := make([]string, len(lo.levels))
	copy(out, lo.levels)
	return out
}

// AddLevel appends an academic level. The level must not already be
// present and must belong to the taxonomy vocabulary.
func (lo *LearningObject) AddLevel(level string) error {
	for _, existing := range lo.levels {
		if existing == level {
			return ErrLevelAlreadyExists
		}
	}
	if !lo.vocab.HasAcademicLevel(level) {
		return ErrInvalidLevel
	}
	lo.levels = append(lo.levels, level)
	lo.touch()
	return nil
}

// RemoveLevel removes and returns the level at the given index. An
// out-of-range index is a no-op returning ""; removing the last remaining
// level fails with ErrLevelsEmpty.
func (lo *LearningObject) RemoveLevel(index int) (string, error) {
	if index < 0 || index >= len(lo.levels) {
		return "", nil
	}
	if len(lo.levels) <= 1 {
		return "", ErrLevelsEmpty
	}
	removed := lo.levels[index]
	lo.levels = append(lo.levels[:index], lo.levels[index+1:]...)
	lo.touch()
	return removed, nil
}

// Goals returns the object's goals in order. The returned slice is a copy.
func (lo *LearningObject) Goals() []*LearningGoal {
	out := make([]*LearningGoal, len(lo.goals))
	copy(out, lo.goals)
	return out
}

// AddGoal appends a goal with the given text and returns its 0-based
// index. Goal text is unvalidated.
func (lo *LearningObject) AddGoal(text string) int {
	lo.goals = append(lo.goals, newLearningGoal(lo, text))
	lo.touch()
	return len(lo.goals) - 1
}

// RemoveGoal removes and returns the goal at the given index, or nil if
// the index is out of range.
func (lo *LearningObject) RemoveGoal(index int) *LearningGoal {
	if index < 0 || index >= len(lo.goals) {
		return nil
	}
	removed := lo.goals[index]
	lo.goals = append(lo.goals[:index], lo.goals[index+1:]...)
	lo.touch()
	return removed
}

// Outcomes returns the object's outcomes in order. The returned slice is
// a copy.
func (lo *LearningObject) Outcomes() []*LearningOutcome {
	out := make([]*LearningOutcome, len(lo.outcomes))
	copy(out, lo.outcomes)
	return out
}

// AddOutcome appends the given outcome and returns its 0-based index. A
// nil outcome appends a freshly constructed one, tagged against this
// object's existing outcomes.
func (lo *LearningObject) AddOutcome(outcome *LearningOutcome) int {
	if outcome == nil {
		outcome = NewLearningOutcome(lo)
	}
	lo.outcomes = append(lo.outcomes, outcome)
	lo.touch()
	return len(lo.outcomes) - 1
}

// RemoveOutcome removes and returns the outcome at the given index, or
// nil if the index is out of range.
func (lo *LearningObject) RemoveOutcome(index int) *LearningOutcome {
	if index < 0 || index >= len(lo.outcomes) {
		return nil
	}
	removed := lo.outcomes[index]
	lo.outcomes = append(lo.outcomes[:index], lo.outcomes[index+1:]...)
	lo.touch()
	return removed
}

// Children returns the object's child objects in order. The returned
// slice is a copy.
func (lo *LearningObject) Children() []*LearningObject {
	out := make([]*LearningObject, len(lo.children))
	copy(out, lo.children)
	return out
}

// AddChild appends a child object and returns its 0-based index. A nil
// child is rejected with ErrNilChild; an add that would make this object
// its own descendant is rejected with ErrChildCycle.
func (lo *LearningObject) AddChild(child *LearningObject) (int, error) {
	if child == nil {
		return 0, ErrNilChild
	}
	if child == lo || child.containsDescendant(lo) {
		return 0, ErrChildCycle
	}
	lo.children = append(lo.children, child)
	lo.touch()
	return len(lo.children) - 1, nil
}

// RemoveChild removes and returns the child at the given index, or nil if
// the index is out of range.
func (lo *LearningObject) RemoveChild(index int) *LearningObject {
	if index < 0 || index >= len(lo.children) {
		return nil
	}
	removed := lo.children[index]
	lo.children = append(lo.children[:index], lo.children[index+1:]...)
	lo.touch()
	return removed
}

func (lo *LearningObject) containsDescendant(target *LearningObject) bool {
	for _, child := range lo.children {
		if child == target || child.containsDescendant(target) {
			return true
		}
	}
	return false
}

// Contributors returns the object's contributors in order. The returned
// slice is a copy.
func (lo *LearningObject) Contributors() []*User {
	out := make([]*User, len(lo.contributors))
	copy(out, lo.contributors)
	return out
}

// AddContributor appends a contributor reference and returns its 0-based
// index.
func (lo *LearningObject) AddContributor(user *User) int {
	lo.contributors = append(lo.contributors, user)
	lo.touch()
	return len(lo.contributors) - 1
}

// RemoveContributor removes and returns the contributor at the given
// index, or nil if the index is out of range.
func (lo *LearningObject) RemoveContributor(index int) *User {
	if index < 0 || index >= len(lo.contributors) {
		return nil
	}
	removed := lo.contributors[index]
	lo.contributors = append(lo.contributors[:index], lo.contributors[index+1:]...)
	lo.touch()
	return removed
}

// SetMaterial replaces the attached media metadata with a deep copy of
// the given value and advances the date.
func (lo *LearningObject) SetMaterial(material Material) {
	lo.material = cloneMaterial(material)
	lo.touch()
}

// SetMetrics replaces the usage counters. Counters are maintained by the
// hosting application and do not advance the last-modified date.
func (lo *LearningObject) SetMetrics(metrics Metrics) {
	lo.metrics = metrics
}

// SetCollection sets the free-text grouping label.
func (lo *LearningObject) SetCollection(collection string) {
	lo.collection = collection
}

// SetStatus sets the review lifecycle status. Setting StatusPublished
// routes through Publish, so re-setting an already-published object
// re-asserts the published flag rather than reassigning the status.
func (lo *LearningObject) SetStatus(status Status) error {
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	if status == StatusPublished {
		lo.Publish()
		return nil
	}
	lo.status = status
	return nil
}

// Publish marks the object published: the published flag is set and the
// status is forced to StatusPublished.
func (lo *LearningObject) Publish() {
	lo.published = true
	lo.status = StatusPublished
}

// Unpublish clears the published flag. The status is left unchanged.
func (lo *LearningObject) Unpublish() {
	lo.published = false
}

// SetLock places a restriction record on the object. Every restriction
// kind must be one of full, publish or download.
func (lo *LearningObject) SetLock(lock Lock) error {
	for _, restriction := range lock.Restrictions {
		if !isValidRestriction(restriction) {
			return ErrInvalidRestriction
		}
	}
	restrictions := make([]Restriction, len(lock.Restrictions))
	copy(restrictions, lock.Restrictions)
	lo.lock = &Lock{Date: lock.Date, Restrictions: restrictions}
	return nil
}

// ClearLock removes the restriction record.
func (lo *LearningObject) ClearLock() {
	lo.lock = nil
}

func isValidLength(length Length) bool {
	switch length {
	case LengthNanomodule, LengthMicromodule, LengthModule, LengthUnit, LengthCourse:
		return true
	default:
		return false
	}
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusUnpublished, StatusWaiting, StatusReviewed, StatusPublished, StatusDenied:
		return true
	default:
		return false
	}
}

func isValidRestriction(restriction Restriction) bool {
	switch restriction {
	case RestrictionFull, RestrictionPublish, RestrictionDownload:
		return true
	default:
		return false
	}
}

func defaultAcademicLevel(vocab taxonomy.Provider) string {
	levels := vocab.AcademicLevels()
	if len(levels) == 0 {
		return ""
	}
	return levels[0]
}

type learningObjectJSON struct {
	Author       *User              `json:"author"`
	Name         string             `json:"name"`
	Date         time.Time          `json:"date"`
	Length       Length             `json:"length"`
	Levels       []string           `json:"levels"`
	Goals        []*LearningGoal    `json:"goals"`
	Outcomes     []*LearningOutcome `json:"outcomes"`
	Material     Material           `json:"material"`
	Metrics      Metrics            `json:"metrics"`
	Children     []*LearningObject  `json:"children"`
	Contributors []*User            `json:"contributors"`
	Collection   string             `json:"collection"`
	Status       Status             `json:"status"`
	Published    bool               `json:"published"`
	Lock         *Lock              `json:"lock,omitempty"`
}

type learningObjectRaw struct {
	Author       *User             `json:"author"`
	Name         string            `json:"name"`
	Date         time.Time         `json:"date"`
	Length       Length            `json:"length"`
	Levels       []string          `json:"levels"`
	Goals        []*LearningGoal   `json:"goals"`
	Outcomes     []json.RawMessage `json:"outcomes"`
	Material     Material          `json:"material"`
	Metrics      Metrics           `json:"metrics"`
	Children     []json.RawMessage `json:"children"`
	Contributors []*User           `json:"contributors"`
	Collection   string            `json:"collection"`
	Status       Status            `json:"status"`
	Published    bool              `json:"published"`
	Lock         *Lock             `json:"lock"`
}

// MarshalJSON serializes the object's public fields. Goal and outcome
// back-references are not part of the payload.
func (lo *LearningObject) MarshalJSON() ([]byte, error) {
	return json.Marshal(learningObjectJSON{
		Author:       lo.author,
		Name:         lo.name,
		Date:         lo.date,
		Length:       lo.length,
		Levels:       lo.levels,
		Goals:        lo.goals,
		Outcomes:     lo.outcomes,
		Material:     lo.material,
		Metrics:      lo.metrics,
		Children:     lo.children,
		Contributors: lo.contributors,
		Collection:   lo.collection,
		Status:       lo.status,
		Published:    lo.published,
		Lock:         lo.lock,
	})
}

// UnmarshalJSON deep-reconstructs the object graph. Scalars go through
// their validating setters and every collection element is re-added
// through the normal add-methods, so validation re-runs on load: a
// payload that was valid when saved can fail to reload if the taxonomy
// vocabulary has changed since. The persisted date is restored last so
// the rebuild's own mutations do not disturb it.
//
// When the receiver already carries a vocabulary (for example one built
// by NewLearningObjectWithVocabulary), that vocabulary is used; otherwise
// the default vocabulary applies.
func (lo *LearningObject) UnmarshalJSON(data []byte) error {
	var raw learningObjectRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	vocab := lo.vocab
	if vocab == nil {
		vocab = taxonomy.Default()
	}

	rebuilt := NewLearningObjectWithVocabulary(raw.Author, raw.Name, vocab)

	if raw.Length != "" {
		if err := rebuilt.SetLength(raw.Length); err != nil {
			return err
		}
	}

	if len(raw.Levels) > 0 {
		rebuilt.levels = rebuilt.levels[:0]
		for _, level := range raw.Levels {
			if err := rebuilt.AddLevel(level); err != nil {
				return err
			}
		}
	}

	for _, goal := range raw.Goals {
		// A JSON null element decodes to a nil goal; skip it rather than
		// dereference it.
		if goal == nil {
			continue
		}
		rebuilt.AddGoal(goal.Text())
	}

	for _, outcomeData := range raw.Outcomes {
		outcome, err := UnmarshalLearningOutcome(outcomeData, rebuilt)
		if err != nil {
			return err
		}
		rebuilt.AddOutcome(outcome)
	}

	rebuilt.SetMaterial(raw.Material)
	rebuilt.SetMetrics(raw.Metrics)
	rebuilt.SetCollection(raw.Collection)

	for _, childData := range raw.Children {
		child := &LearningObject{vocab: vocab}
		if err := child.UnmarshalJSON(childData); err != nil {
			return err
		}
		if _, err := rebuilt.AddChild(child); err != nil {
			return err
		}
	}

	for _, contributor := range raw.Contributors {
		rebuilt.AddContributor(contributor)
	}

	if raw.Status != "" {
		if err := rebuilt.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	rebuilt.published = raw.Published

	if raw.Lock != nil {
		if err := rebuilt.SetLock(*raw.Lock); err != nil {
			return err
		}
	}

	if !raw.Date.IsZero() {
		rebuilt.date = raw.Date
	}

	*lo = *rebuilt

	// Goals hold a live back-reference to their owner; point them at the
	// receiver now that the rebuilt state has been copied over.
	for _, goal := range lo.goals {
		goal.source = lo
	}

	return nil
}
