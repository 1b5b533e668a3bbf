package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/corpus-audit/internal/citegraph"
	"github.com/pdiddy/corpus-audit/internal/extract"
	"github.com/pdiddy/corpus-audit/internal/stats"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

func TestMain(m *testing.M) {
	now = func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) }
	m.Run()
}

func fixture() ([]types.Paper, []types.CitationEdge, extract.Result, citegraph.Analysis, stats.Summary) {
	papers := []types.Paper{
		{PaperID: "p1", Title: "First", Institution: "MIT", Year: 2020},
		{PaperID: "p2", Title: "Second", Year: 2021},
	}
	citations := []types.CitationEdge{
		{CitingPaper: "p1", CitedPaper: "p2"},
		{CitingPaper: "p2", CitedPaper: "ghost"},
	}
	entities := extract.Result{
		Authors: []types.ResolvedEntity{
			{Name: "Author A", PaperIDs: []string{"p1", "p2"}},
			{Name: "Author B", PaperIDs: []string{"p2"}},
		},
		Institutions: []types.ResolvedEntity{
			{Name: "Massachusetts Institute of Technology", PaperIDs: []string{"p1"}},
		},
		Topics: map[string]int{"nlp": 3, "graphs": 1, "vision": 1},
		AmbiguousResolutions: []types.AmbiguousResolution{
			{NameVariation: "J. Smith", ResolvedTo: "John Smith", InstitutionUsed: "MIT"},
		},
		AffiliationConflicts: []types.AffiliationConflict{
			{PaperID: "p1", Author: "Author B", ListedInstitution: "MIT", ExpectedInstitution: "Stanford University"},
		},
	}
	graph := citegraph.Analysis{
		InDegree:  map[string]int{"p1": 0, "p2": 1},
		OutDegree: map[string]int{"p1": 1, "p2": 1},
		TopCited:  []string{"p2", "p1"},
		OrphanCitations: []types.OrphanCitation{
			{CitingPaper: "p2", CitedPaper: "ghost"},
		},
		TemporalAnomalies: []types.TemporalAnomaly{
			{CitingPaper: "p1", CitedPaper: "p2", CitingYear: 2020, CitedYear: 2021},
		},
		RingPapers: []string{"p1", "p2"},
		PageRank:   map[string]float64{"p1": 0.4, "p2": 0.6},
	}
	summary := stats.Summary{PapersMissingAbstract: 2, PapersMissingKeywords: 2}
	return papers, citations, entities, graph, summary
}

func allPassing() map[string]bool {
	return map[string]bool{"a_check": true, "b_check": true}
}

func TestAssemble_Sections(t *testing.T) {
	papers, citations, entities, graph, summary := fixture()
	r := Assemble(papers, citations, entities, graph, nil, summary, allPassing())

	assert.Equal(t, 2, r.Metadata.PapersAnalyzed)
	assert.Equal(t, "2026-01-15T12:00:00Z", r.Metadata.ExecutionTimestamp)

	assert.Equal(t, 2, r.EntityExtraction.Authors.TotalUnique)
	require.NotEmpty(t, r.EntityExtraction.Authors.TopByPaperCount)
	assert.Equal(t, types.EntityCount{Name: "Author A", PaperCount: 2}, r.EntityExtraction.Authors.TopByPaperCount[0])

	assert.Equal(t, 3, r.EntityExtraction.Topics.TotalUnique)
	assert.Equal(t, types.TopicCount{Topic: "nlp", Count: 3}, r.EntityExtraction.Topics.TopByFrequency[0])
	// Tie between graphs and vision breaks alphabetically.
	assert.Equal(t, "graphs", r.EntityExtraction.Topics.TopByFrequency[1].Topic)

	assert.Equal(t, 2, r.CitationAnalysis.TotalCitations)
	require.Len(t, r.CitationAnalysis.TopCitedPapers, 2)
	assert.Equal(t, types.CitedPaperDetail{PaperID: "p2", CitationCount: 1, Title: "Second"}, r.CitationAnalysis.TopCitedPapers[0])
	assert.InDelta(t, 0.5, r.CitationAnalysis.NetworkStatistics.AvgInDegree, 1e-9)
	assert.Equal(t, 1, r.CitationAnalysis.NetworkStatistics.MaxOutDegree)

	assert.True(t, r.AnomalyDetection.CitationRings.Detected)
	assert.Equal(t, []string{"p1", "p2"}, r.AnomalyDetection.CitationRings.PapersInvolved)
	assert.Equal(t, 1, r.AnomalyDetection.TemporalAnomalies.Count)
	assert.Equal(t, types.TemporalExample{Citing: "p1", Cited: "p2", Issue: "Year 2020 cites 2021"},
		r.AnomalyDetection.TemporalAnomalies.Examples[0])
	require.Len(t, r.AnomalyDetection.AffiliationConflicts, 1)
	assert.Equal(t, "Listed at MIT, expected Stanford University", r.AnomalyDetection.AffiliationConflicts[0].Conflict)

	assert.Equal(t, 1, r.DataQuality.MissingInstitutions)
	assert.Equal(t, 0, r.DataQuality.DuplicateAuthorEntries)
}

func TestAssemble_ValidationSummary(t *testing.T) {
	papers, citations, entities, graph, summary := fixture()

	r := Assemble(papers, citations, entities, graph, nil, summary, allPassing())
	assert.True(t, r.ValidationSummary.AllChecksPassed)
	assert.Empty(t, r.ValidationSummary.FailedChecks)

	checks := allPassing()
	checks["z_check"] = false
	checks["a_failed"] = false
	r = Assemble(papers, citations, entities, graph, nil, summary, checks)
	assert.False(t, r.ValidationSummary.AllChecksPassed)
	assert.Equal(t, []string{"a_failed", "z_check"}, r.ValidationSummary.FailedChecks)
}

func TestAssemble_TopNSlicing(t *testing.T) {
	papers, citations, entities, graph, summary := fixture()

	for i := 0; i < 12; i++ {
		entities.Authors = append(entities.Authors, types.ResolvedEntity{
			Name: "Extra", PaperIDs: []string{"p1"},
		})
		graph.RingPapers = append(graph.RingPapers, "extra")
		entities.AmbiguousResolutions = append(entities.AmbiguousResolutions, types.AmbiguousResolution{})
		graph.TemporalAnomalies = append(graph.TemporalAnomalies, types.TemporalAnomaly{})
	}
	r := Assemble(papers, citations, entities, graph, nil, summary, allPassing())

	assert.Len(t, r.EntityExtraction.Authors.TopByPaperCount, 5)
	assert.Len(t, r.AnomalyDetection.CitationRings.PapersInvolved, 10)
	assert.Len(t, r.AnomalyDetection.AmbiguousResolutions, 5)
	assert.Len(t, r.AnomalyDetection.TemporalAnomalies.Examples, 5)
	assert.Equal(t, 13, r.AnomalyDetection.TemporalAnomalies.Count)
}

func TestAssemble_DuplicateAuthorEntries(t *testing.T) {
	papers, citations, entities, graph, summary := fixture()
	entities.Authors = append(entities.Authors, types.ResolvedEntity{
		Name: "Twice Credited", PaperIDs: []string{"p1", "p1"},
	})
	r := Assemble(papers, citations, entities, graph, nil, summary, allPassing())
	assert.Equal(t, 1, r.DataQuality.DuplicateAuthorEntries)
}
