package taxonomy

// Built-in vocabulary. Deployments that need a revised vocabulary overlay
// it with New or LoadFile instead of editing these sets, so persisted
// content can be re-validated against whatever vocabulary is current.
var (
	defaultAcademicLevels = []string{
		"elementary",
		"middle",
		"high",
		"undergraduate",
		"graduate",
		"post graduate",
		"community college",
		"training",
	}

	defaultBlooms = []string{
		"remember",
		"understand",
		"apply",
		"analyze",
		"evaluate",
		"create",
	}

	defaultVerbs = map[string][]string{
		"remember": {
			"define", "describe", "identify", "label", "list",
			"match", "name", "recall", "recognize", "state",
		},
		"understand": {
			"classify", "compare", "discuss", "explain", "interpret",
			"paraphrase", "predict", "summarize", "translate",
		},
		"apply": {
			"apply", "demonstrate", "execute", "implement",
			"operate", "perform", "solve", "use",
		},
		"analyze": {
			"analyze", "categorize", "contrast", "deconstruct",
			"differentiate", "distinguish", "examine", "organize",
		},
		"evaluate": {
			"appraise", "argue", "assess", "critique", "defend",
			"judge", "justify", "recommend",
		},
		"create": {
			"assemble", "compose", "construct", "design",
			"develop", "formulate", "invent", "produce",
		},
	}

	defaultKinds = map[string][]string{
		"remember": {
			"quiz", "flash cards", "matching", "labeling", "short answer",
		},
		"understand": {
			"concept map", "discussion", "summary", "presentation",
		},
		"apply": {
			"lab", "problem set", "simulation", "demonstration",
		},
		"analyze": {
			"case study", "debate", "diagram", "critique",
		},
		"evaluate": {
			"peer review", "position paper", "rubric evaluation", "debate",
		},
		"create": {
			"project", "portfolio", "prototype", "research proposal",
		},
	}
)

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	return &Vocabulary{
		academicLevels: defaultAcademicLevels,
		blooms:         defaultBlooms,
		verbs:          defaultVerbs,
		kinds:          defaultKinds,
	}
}
