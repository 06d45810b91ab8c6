// Package taxonomy supplies the controlled vocabularies the entity model
// validates against: academic levels for learning objects, Bloom levels for
// outcomes, and the verb and assessment-kind sets keyed by Bloom level.
//
// The model layer only ever asks membership questions; vocabularies are
// never mutated after construction.
package taxonomy

// Provider is the read-only vocabulary oracle consumed by the domain
// package. Implementations must be safe for concurrent readers.
type Provider interface {
	// HasAcademicLevel reports whether level is a recognized academic level.
	HasAcademicLevel(level string) bool

	// HasBloom reports whether bloom is a recognized Bloom level key.
	HasBloom(bloom string) bool

	// HasVerb reports whether verb belongs to the verb set for bloom.
	HasVerb(bloom, verb string) bool

	// HasKind reports whether kind belongs to the assessment-kind set for
	// bloom. Assessment plans and instructional strategies share this set.
	HasKind(bloom, kind string) bool

	// AcademicLevels returns the ordered academic level keys.
	AcademicLevels() []string

	// Blooms returns the ordered Bloom level keys.
	Blooms() []string

	// Verbs returns the ordered verb set for bloom, or nil if bloom is not
	// a recognized level.
	Verbs(bloom string) []string

	// Kinds returns the ordered assessment-kind set for bloom, or nil if
	// bloom is not a recognized level.
	Kinds(bloom string) []string
}

// Vocabulary is an immutable Provider backed by in-memory sets.
type Vocabulary struct {
	academicLevels []string
	blooms         []string
	verbs          map[string][]string
	kinds          map[string][]string
}

// HasAcademicLevel implements Provider.
func (v *Vocabulary) HasAcademicLevel(level string) bool {
	return contains(v.academicLevels, level)
}

// HasBloom implements Provider.
func (v *Vocabulary) HasBloom(bloom string) bool {
	return contains(v.blooms, bloom)
}

// HasVerb implements Provider.
func (v *Vocabulary) HasVerb(bloom, verb string) bool {
	return contains(v.verbs[bloom], verb)
}

// HasKind implements Provider.
func (v *Vocabulary) HasKind(bloom, kind string) bool {
	return contains(v.kinds[bloom], kind)
}

// AcademicLevels implements Provider. The returned slice is a copy.
func (v *Vocabulary) AcademicLevels() []string {
	return copySet(v.academicLevels)
}

// Blooms implements Provider. The returned slice is a copy.
func (v *Vocabulary) Blooms() []string {
	return copySet(v.blooms)
}

// Verbs implements Provider. The returned slice is a copy.
func (v *Vocabulary) Verbs(bloom string) []string {
	return copySet(v.verbs[bloom])
}

// Kinds implements Provider. The returned slice is a copy.
func (v *Vocabulary) Kinds(bloom string) []string {
	return copySet(v.kinds[bloom])
}

// DefaultAcademicLevel returns the first academic level key. Entity
// constructors seed new learning objects with it.
func (v *Vocabulary) DefaultAcademicLevel() string {
	return first(v.academicLevels)
}

// DefaultBloom returns the first Bloom level key.
func (v *Vocabulary) DefaultBloom() string {
	return first(v.blooms)
}

// DefaultVerb returns the first verb for bloom, or "" if bloom is not a
// recognized level.
func (v *Vocabulary) DefaultVerb(bloom string) string {
	return first(v.verbs[bloom])
}

// DefaultKind returns the first assessment kind for bloom, or "" if bloom
// is not a recognized level.
func (v *Vocabulary) DefaultKind(bloom string) string {
	return first(v.kinds[bloom])
}

func contains(set []string, key string) bool {
	for _, k := range set {
		if k == key {
			return true
		}
	}
	return false
}

func copySet(set []string) []string {
	if set == nil {
		return nil
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}

func first(set []string) string {
	if len(set) == 0 {
		return ""
	}
	return set[0]
}
