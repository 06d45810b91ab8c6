package taxonomy

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config overrides parts of the built-in vocabulary when creating a new
// Vocabulary. Zero-value fields keep the defaults. Verb and kind sets are
// merged per Bloom level, so a config may revise a single level's verbs
// without restating the others.
type Config struct {
	AcademicLevels []string            `mapstructure:"academic_levels"`
	Blooms         []string            `mapstructure:"blooms"`
	Verbs          map[string][]string `mapstructure:"verbs"`
	Kinds          map[string][]string `mapstructure:"kinds"`
}

// New creates a Vocabulary from the built-in defaults overlaid with config.
func New(config Config) *Vocabulary {
	v := &Vocabulary{
		academicLevels: copySet(defaultAcademicLevels),
		blooms:         copySet(defaultBlooms),
		verbs:          copySets(defaultVerbs),
		kinds:          copySets(defaultKinds),
	}

	if len(config.AcademicLevels) > 0 {
		v.academicLevels = copySet(config.AcademicLevels)
	}
	if len(config.Blooms) > 0 {
		v.blooms = copySet(config.Blooms)
	}
	for bloom, verbs := range config.Verbs {
		v.verbs[bloom] = copySet(verbs)
	}
	for bloom, kinds := range config.Kinds {
		v.kinds[bloom] = copySet(kinds)
	}

	return v
}

// LoadFile reads a vocabulary config file (any format viper understands,
// chosen by extension) and returns the resulting Vocabulary.
func LoadFile(path string) (*Vocabulary, error) {
	vp := viper.New()
	vp.SetConfigFile(path)

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	var config Config
	if err := vp.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}

	return New(config), nil
}

func copySets(sets map[string][]string) map[string][]string {
	out := make(map[string][]string, len(sets))
	for key, set := range sets {
		out[key] = copySet(set)
	}
	return out
}
