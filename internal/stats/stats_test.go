package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/corpus-audit/internal/citegraph"
	"github.com/pdiddy/corpus-audit/internal/extract"
	"github.com/pdiddy/corpus-audit/internal/resolve"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

func summaryFixture() ([]types.Paper, []types.CitationEdge, extract.Result, citegraph.Analysis) {
	papers := []types.Paper{
		{PaperID: "p1", Authors: []string{"A. One", "B. Two"}, Institution: "MIT", Venue: "NeurIPS", Year: 2019, Abstract: "text", Keywords: []string{"nlp"}},
		{PaperID: "p2", Authors: []string{"A. One"}, Venue: "NeurIPS", Year: 2021},
		{PaperID: "p3", Authors: []string{"C. Three"}, Institution: "MIT", Venue: "ICML", Year: 2020, Abstract: "text"},
	}
	edges := []types.CitationEdge{
		{CitingPaper: "p1", CitedPaper: "p2"},
		{CitingPaper: "p2", CitedPaper: "missing"},
	}
	entities := extract.Result{
		Authors:              []types.ResolvedEntity{{Name: "Author One"}, {Name: "Author Two"}},
		Institutions:         []types.ResolvedEntity{{Name: "Massachusetts Institute of Technology"}},
		AffiliationConflicts: []types.AffiliationConflict{{PaperID: "p1"}},
	}
	graph := citegraph.Analysis{
		OrphanCitations:   []types.OrphanCitation{{CitingPaper: "p2", CitedPaper: "missing"}},
		SelfCitations:     []string{"p1"},
		TemporalAnomalies: []types.TemporalAnomaly{{CitingPaper: "p1", CitedPaper: "p2"}},
		RingPapers:        []string{"p1", "p2", "p3"},
	}
	return papers, edges, entities, graph
}

func TestSummarize(t *testing.T) {
	papers, edges, entities, graph := summaryFixture()
	typos := []types.TypoCorrection{{Original: "Jonh", Corrected: "John", Confidence: 0.8}}

	s := Summarize(papers, edges, entities, graph, typos)

	assert.Equal(t, 3, s.TotalPapers)
	assert.Equal(t, 2, s.TotalCitations)
	assert.Equal(t, 3, s.UniqueAuthorsRaw)
	assert.Equal(t, 2, s.UniqueAuthorsResolved)
	assert.Equal(t, 1, s.UniqueInstitutionsRaw)
	assert.Equal(t, 1, s.UniqueInstitutionsResolved)
	assert.Equal(t, 1, s.PapersMissingAbstract)
	assert.Equal(t, 2, s.PapersMissingKeywords)
	assert.Equal(t, 1, s.OrphanCitationCount)
	assert.Equal(t, 1, s.SelfCitationCount)
	assert.InDelta(t, 2.0/3.0, s.AvgCitationsPerPaper, 1e-9)
	assert.Equal(t, "NeurIPS", s.MostCommonVenue)
	assert.Equal(t, 2019, s.YearMin)
	assert.Equal(t, 2021, s.YearMax)
	assert.Equal(t, 3, s.CitationRingCount)
	assert.Equal(t, 1, s.TemporalAnomalyCount)
	assert.Equal(t, 1, s.TypoCorrectionCount)
	assert.Equal(t, 1, s.AffiliationConflictCount)
}

func TestSummarize_EmptyCorpus(t *testing.T) {
	s := Summarize(nil, nil, extract.Result{}, citegraph.Analysis{}, nil)

	assert.Equal(t, 0, s.TotalPapers)
	assert.Equal(t, 0.0, s.AvgCitationsPerPaper)
	assert.Equal(t, "", s.MostCommonVenue)
}

func TestSummarize_VenueTieKeepsFirstSeen(t *testing.T) {
	papers := []types.Paper{
		{PaperID: "p1", Venue: "ICML", Year: 2020},
		{PaperID: "p2", Venue: "ACL", Year: 2020},
		{PaperID: "p3", Venue: "ICML", Year: 2020},
		{PaperID: "p4", Venue: "ACL", Year: 2020},
	}
	s := Summarize(papers, nil, extract.Result{}, citegraph.Analysis{}, nil)
	assert.Equal(t, "ICML", s.MostCommonVenue)
}

func passingInput() CheckInput {
	papers, edges, entities, graph := summaryFixture()
	graph.Adjacency = map[string][]string{"p1": {"p2"}}
	graph.PageRank = map[string]float64{"p1": 0.5, "p2": 0.5}
	entities.AmbiguousResolutions = []types.AmbiguousResolution{{NameVariation: "J. Smith"}}

	maps := resolve.Maps{
		Authors:         map[string]string{"A. One": "Author One"},
		TypoCorrections: []types.TypoCorrection{{Original: "Jonh", Corrected: "John", Confidence: 0.9}},
	}

	return CheckInput{
		Papers:    papers,
		Citations: edges,
		Reference: types.ReferenceData{
			Authors:      map[string]types.AuthorRef{"auth_001": {ID: "auth_001"}},
			Institutions: map[string]types.InstitutionRef{"inst_001": {ID: "inst_001"}},
		},
		Maps:                maps,
		Entities:            entities,
		Graph:               graph,
		VenueNormalizations: map[string]string{"NIPS": "NeurIPS"},
		FuzzyMatchThreshold: 0.8,
	}
}

func TestChecks_AllPass(t *testing.T) {
	checks := Checks(passingInput())

	assert.True(t, AllPassed(checks))
	assert.Empty(t, FailedChecks(checks))
}

func TestChecks_DuplicatePaperIDs(t *testing.T) {
	in := passingInput()
	in.Papers = append(in.Papers, types.Paper{PaperID: "p1"})

	checks := Checks(in)
	assert.False(t, checks["no_duplicate_paper_ids"])
	assert.False(t, AllPassed(checks))
	assert.Equal(t, []string{"no_duplicate_paper_ids"}, FailedChecks(checks))
}

func TestChecks_EmptyCorpusFailsNotPanics(t *testing.T) {
	checks := Checks(CheckInput{})

	assert.False(t, checks["papers_loaded_ok"])
	assert.False(t, checks["citations_loaded_ok"])
	assert.False(t, checks["pagerank_computed"])
	// Vacuous passes stay true on empty input.
	assert.True(t, checks["no_duplicate_paper_ids"])
	assert.True(t, checks["all_pagerank_finite"])
}

func TestChecks_NonFinitePageRank(t *testing.T) {
	in := passingInput()
	in.Graph.PageRank["p1"] = math.NaN()

	checks := Checks(in)
	assert.False(t, checks["all_pagerank_finite"])

	in.Graph.PageRank["p1"] = math.Inf(1)
	checks = Checks(in)
	assert.False(t, checks["all_pagerank_finite"])
}

func TestChecks_ImplausibleTypoCorrection(t *testing.T) {
	in := passingInput()
	in.Maps.TypoCorrections = append(in.Maps.TypoCorrections, types.TypoCorrection{
		Original: "Bob", Corrected: "Entirely Different Name", Confidence: 0.1,
	})

	checks := Checks(in)
	assert.False(t, checks["typo_corrections_plausible"])
}
