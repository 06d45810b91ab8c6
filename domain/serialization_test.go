package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onslate/entities/domain/taxonomy"
)

// buildSampleObject assembles a two-level graph that exercises every
// serialized collection.
func buildSampleObject(t *testing.T) *LearningObject {
	t.Helper()

	author, err := NewUser("Ada Lovelace", "ada@example.edu")
	require.NoError(t, err)

	lo := NewLearningObject(author, "Intro to Cryptography")
	require.NoError(t, lo.SetLength(LengthModule))
	require.NoError(t, lo.AddLevel("undergraduate"))
	require.NoError(t, lo.AddLevel("graduate"))
	lo.AddGoal("understand symmetric ciphers")
	lo.AddGoal("apply block cipher modes")
	lo.SetCollection("security")
	lo.SetMetrics(Metrics{Saves: 12, Downloads: 40})
	lo.SetMaterial(Material{
		Files: []File{{Name: "notes.pdf", URL: "https://cdn.example.edu/notes.pdf"}},
		URLs:  []URL{{Title: "RFC 8446", URL: "https://www.rfc-editor.org/rfc/rfc8446"}},
		Notes: "week three",
	})

	outcomeIdx := lo.AddOutcome(nil)
	outcome := lo.Outcomes()[outcomeIdx]
	require.NoError(t, outcome.SetBloom("apply"))
	require.NoError(t, outcome.SetVerb("demonstrate"))
	require.NoError(t, outcome.SetText("can demonstrate CBC encryption by hand"))

	planIdx := outcome.AddAssessment()
	plan := outcome.Assessments()[planIdx]
	require.NoError(t, plan.SetKind("problem set"))
	require.NoError(t, plan.SetText("encrypt a two-block message"))

	strategyIdx := outcome.AddStrategy()
	strategy := outcome.Strategies()[strategyIdx]
	require.NoError(t, strategy.SetText("worked example, then guided practice"))

	standard := NewStandardOutcome()
	require.NoError(t, standard.SetAuthor("CAE"))
	require.NoError(t, standard.SetName("K0018"))
	require.NoError(t, standard.SetDate("2019"))
	require.NoError(t, standard.SetOutcome("Knowledge of encryption algorithms."))
	outcome.MapTo(standard)

	contributor, err := NewUser("Grace Hopper", "grace@example.edu")
	require.NoError(t, err)
	lo.AddContributor(contributor)

	child := NewLearningObject(author, "Stream Ciphers")
	child.AddGoal("contrast stream and block ciphers")
	_, err = lo.AddChild(child)
	require.NoError(t, err)

	require.NoError(t, lo.SetStatus(StatusPublished))
	require.NoError(t, lo.SetLock(Lock{
		Date:         time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second),
		Restrictions: []Restriction{RestrictionDownload},
	}))

	return lo
}

func TestLearningObjectRoundTrip(t *testing.T) {
	t.Parallel()
	original := buildSampleObject(t)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var reloaded LearningObject
	require.NoError(t, json.Unmarshal(data, &reloaded))

	assertSameObject(t, original, &reloaded)
}

// assertSameObject checks the round-trip property recursively: name,
// length, status and the shapes and contents of every collection.
func assertSameObject(t *testing.T, want, got *LearningObject) {
	t.Helper()

	require.Equal(t, want.Name(), got.Name())
	require.Equal(t, want.Length(), got.Length())
	require.Equal(t, want.Status(), got.Status())
	require.Equal(t, want.Published(), got.Published())
	require.Equal(t, want.Levels(), got.Levels())
	require.Equal(t, want.Collection(), got.Collection())
	require.Equal(t, want.Metrics(), got.Metrics())
	require.Equal(t, want.Material(), got.Material())
	require.True(t, want.Date().Equal(got.Date()), "date must survive the round trip")

	if want.Author() == nil {
		require.Nil(t, got.Author())
	} else {
		require.Equal(t, want.Author().ID, got.Author().ID)
		require.Equal(t, want.Author().Name, got.Author().Name)
	}

	wantGoals, gotGoals := want.Goals(), got.Goals()
	require.Len(t, gotGoals, len(wantGoals))
	for i := range wantGoals {
		require.Equal(t, wantGoals[i].Text(), gotGoals[i].Text())
		require.Same(t, got, gotGoals[i].Source(), "goal owner must be re-attached on load")
	}

	wantOutcomes, gotOutcomes := want.Outcomes(), got.Outcomes()
	require.Len(t, gotOutcomes, len(wantOutcomes))
	for i := range wantOutcomes {
		assertSameOutcome(t, wantOutcomes[i], gotOutcomes[i])
	}

	wantContributors, gotContributors := want.Contributors(), got.Contributors()
	require.Len(t, gotContributors, len(wantContributors))
	for i := range wantContributors {
		require.Equal(t, wantContributors[i].ID, gotContributors[i].ID)
	}

	if want.Lock() == nil {
		require.Nil(t, got.Lock())
	} else {
		require.NotNil(t, got.Lock())
		require.Equal(t, want.Lock().Restrictions, got.Lock().Restrictions)
		require.True(t, want.Lock().Date.Equal(got.Lock().Date))
	}

	wantChildren, gotChildren := want.Children(), got.Children()
	require.Len(t, gotChildren, len(wantChildren))
	for i := range wantChildren {
		assertSameObject(t, wantChildren[i], gotChildren[i])
	}
}

func assertSameOutcome(t *testing.T, want, got *LearningOutcome) {
	t.Helper()

	require.Equal(t, want.Tag(), got.Tag())
	require.Equal(t, want.Bloom(), got.Bloom())
	require.Equal(t, want.Verb(), got.Verb())
	require.Equal(t, want.Text(), got.Text())
	require.Equal(t, want.Source().Author, got.Source().Author)
	require.Equal(t, want.Source().Name, got.Source().Name)

	wantMappings, gotMappings := want.Mappings(), got.Mappings()
	require.Len(t, gotMappings, len(wantMappings))
	for i := range wantMappings {
		require.Equal(t, wantMappings[i].Author(), gotMappings[i].Author())
		require.Equal(t, wantMappings[i].Name(), gotMappings[i].Name())
		require.Equal(t, wantMappings[i].Date(), gotMappings[i].Date())
		require.Equal(t, wantMappings[i].Outcome(), gotMappings[i].Outcome())
	}

	wantPlans, gotPlans := want.Assessments(), got.Assessments()
	require.Len(t, gotPlans, len(wantPlans))
	for i := range wantPlans {
		require.Equal(t, wantPlans[i].Kind(), gotPlans[i].Kind())
		require.Equal(t, wantPlans[i].Text(), gotPlans[i].Text())
	}

	wantStrategies, gotStrategies := want.Strategies(), got.Strategies()
	require.Len(t, gotStrategies, len(wantStrategies))
	for i := range wantStrategies {
		require.Equal(t, wantStrategies[i].Kind(), gotStrategies[i].Kind())
		require.Equal(t, wantStrategies[i].Text(), gotStrategies[i].Text())
	}
}

func TestRoundTripRevalidatesAgainstVocabulary(t *testing.T) {
	t.Parallel()
	original := buildSampleObject(t)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	// A vocabulary revision that drops the graduate level makes the saved
	// payload fail on reload.
	revised := taxonomy.New(taxonomy.Config{
		AcademicLevels: []string{"elementary", "undergraduate"},
	})

	reloaded := NewLearningObjectWithVocabulary(nil, "", revised)
	err = json.Unmarshal(data, reloaded)
	require.ErrorIs(t, err, ErrInvalidLevel)
}

func TestUnmarshalNullGoalSkipped(t *testing.T) {
	t.Parallel()

	// Hand-written payloads can carry null array elements; they must be
	// dropped, not dereferenced.
	var reloaded LearningObject
	err := json.Unmarshal([]byte(`{"name": "x", "goals": [null, {"text": "kept"}]}`), &reloaded)
	require.NoError(t, err)

	goals := reloaded.Goals()
	require.Len(t, goals, 1)
	require.Equal(t, "kept", goals[0].Text())
}

func TestUnmarshalEmptyLevelsKeepsDefault(t *testing.T) {
	t.Parallel()

	var reloaded LearningObject
	err := json.Unmarshal([]byte(`{"name": "bare", "levels": []}`), &reloaded)
	require.NoError(t, err)

	// Partial payloads fall back to the documented defaults, so the
	// never-empty invariant holds even for hand-written input.
	require.Len(t, reloaded.Levels(), 1)
	require.Equal(t, "bare", reloaded.Name())
	require.Equal(t, LengthNanomodule, reloaded.Length())
	require.Equal(t, StatusUnpublished, reloaded.Status())
}
