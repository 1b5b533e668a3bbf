package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/corpus-audit/internal/resolve"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

func testReference() types.ReferenceData {
	return types.ReferenceData{
		Authors: map[string]types.AuthorRef{
			"auth_001": {
				ID:                 "auth_001",
				CanonicalName:      "John Smith",
				KnownVariations:    []string{"J. Smith", "Smith, J."},
				PrimaryInstitution: "inst_001",
			},
			"auth_002": {
				ID:                 "auth_002",
				CanonicalName:      "Jane Smith",
				KnownVariations:    []string{"J. Smith"},
				PrimaryInstitution: "inst_002",
			},
			"auth_003": {
				ID:                 "auth_003",
				CanonicalName:      "Maria Garcia",
				KnownVariations:    []string{"M. Garcia"},
				PrimaryInstitution: "inst_002",
			},
		},
		Institutions: map[string]types.InstitutionRef{
			"inst_001": {
				ID:              "inst_001",
				CanonicalName:   "Massachusetts Institute of Technology",
				KnownVariations: []string{"MIT"},
				Country:         "USA",
			},
			"inst_002": {
				ID:              "inst_002",
				CanonicalName:   "Stanford University",
				KnownVariations: []string{"Stanford"},
				Country:         "USA",
			},
		},
	}
}

func testPapers() []types.Paper {
	return []types.Paper{
		{
			PaperID:     "paper_001",
			Title:       "Attention Over Citation Graphs",
			Authors:     []string{"J. Smith", "M. Garcia"},
			Institution: "MIT",
			Abstract:    "We train with gradient descent on graph data.",
			Keywords:    []string{"nlp", "graphs"},
			Venue:       "NeurIPS",
			Year:        2020,
		},
		{
			PaperID:     "paper_002",
			Title:       "Scaling Entity Resolution",
			Authors:     []string{"J. Smith"},
			Institution: "Stanford",
			Abstract:    "An attention mechanism over name variants.",
			Keywords:    []string{"nlp"},
			Venue:       "ACL",
			Year:        2021,
		},
		{
			PaperID: "paper_003",
			Title:   "Untethered Results",
			Authors: []string{"Jane Smith"},
			Venue:   "ICML",
			Year:    2022,
		},
	}
}

func testMaps(t *testing.T) resolve.Maps {
	t.Helper()
	return resolve.BuildMaps(testReference(), types.DefaultPipelineConfig())
}

func TestEntities_AuthorAggregates(t *testing.T) {
	res := Entities(testPapers(), testReference(), testMaps(t), types.DefaultPipelineConfig())

	byName := make(map[string]types.ResolvedEntity)
	for _, a := range res.Authors {
		byName[a.Name] = a
	}

	// "J. Smith" at MIT is John Smith; at Stanford it is Jane Smith.
	require.Contains(t, byName, "John Smith")
	require.Contains(t, byName, "Jane Smith")
	assert.Equal(t, []string{"paper_001"}, byName["John Smith"].PaperIDs)
	assert.Equal(t, []string{"paper_002", "paper_003"}, byName["Jane Smith"].PaperIDs)
	assert.ElementsMatch(t, []string{"J. Smith", "Jane Smith"}, byName["Jane Smith"].NameVariations)
}

func TestEntities_InstitutionAggregates(t *testing.T) {
	res := Entities(testPapers(), testReference(), testMaps(t), types.DefaultPipelineConfig())

	require.Len(t, res.Institutions, 2) // paper_003 has no institution
	assert.Equal(t, "Massachusetts Institute of Technology", res.Institutions[0].Name)
	assert.Equal(t, []string{"paper_001"}, res.Institutions[0].PaperIDs)
	assert.Equal(t, []string{"MIT"}, res.Institutions[0].NameVariations)
	assert.Equal(t, "Stanford University", res.Institutions[1].Name)
}

func TestEntities_Topics(t *testing.T) {
	res := Entities(testPapers(), testReference(), testMaps(t), types.DefaultPipelineConfig())

	assert.Equal(t, map[string]int{"nlp": 2, "graphs": 1}, res.Topics)
}

func TestEntities_AmbiguousResolutions(t *testing.T) {
	res := Entities(testPapers(), testReference(), testMaps(t), types.DefaultPipelineConfig())

	// "J. Smith" collides across institutions; both contextual resolutions
	// must be audited. "Jane Smith" on paper_003 is unambiguous, so no record.
	require.Len(t, res.AmbiguousResolutions, 2)
	assert.Equal(t, "J. Smith", res.AmbiguousResolutions[0].NameVariation)
	assert.Equal(t, "John Smith", res.AmbiguousResolutions[0].ResolvedTo)
	assert.Equal(t, "MIT", res.AmbiguousResolutions[0].InstitutionUsed)
	assert.Equal(t, "Jane Smith", res.AmbiguousResolutions[1].ResolvedTo)
	assert.Equal(t, "Stanford", res.AmbiguousResolutions[1].InstitutionUsed)
}

func TestEntities_AffiliationConflicts(t *testing.T) {
	res := Entities(testPapers(), testReference(), testMaps(t), types.DefaultPipelineConfig())

	// Maria Garcia's primary institution is Stanford, but paper_001 lists MIT.
	require.Len(t, res.AffiliationConflicts, 1)
	c := res.AffiliationConflicts[0]
	assert.Equal(t, "paper_001", c.PaperID)
	assert.Equal(t, "Maria Garcia", c.Author)
	assert.Equal(t, "Massachusetts Institute of Technology", c.ListedInstitution)
	assert.Equal(t, "Stanford University", c.ExpectedInstitution)
}

func TestEntities_DoubleListedAuthor(t *testing.T) {
	papers := []types.Paper{{
		PaperID: "paper_009",
		Title:   "Self Collaboration",
		Authors: []string{"M. Garcia", "Maria Garcia"},
		Year:    2020,
	}}
	res := Entities(papers, testReference(), testMaps(t), types.DefaultPipelineConfig())

	// Both surface forms resolve to the same person; the paper genuinely
	// lists her twice, so the aggregate keeps both entries.
	require.Len(t, res.Authors, 1)
	assert.Equal(t, []string{"paper_009", "paper_009"}, res.Authors[0].PaperIDs)
	assert.Equal(t, []string{"M. Garcia", "Maria Garcia"}, res.Authors[0].NameVariations)
}

func TestMethodMentions(t *testing.T) {
	cfg := types.DefaultPipelineConfig()
	methods := MethodMentions(testPapers(), cfg.MethodVocabulary)

	assert.Equal(t, []string{"gradient descent", "attention mechanism"}, methods)
}

func TestMethodMentions_CaseInsensitive(t *testing.T) {
	papers := []types.Paper{{PaperID: "p", Abstract: "GRADIENT DESCENT works."}}
	methods := MethodMentions(papers, []string{"gradient descent"})
	assert.Equal(t, []string{"gradient descent"}, methods)
}
