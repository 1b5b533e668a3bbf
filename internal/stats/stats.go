// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats aggregates the pipeline's outputs into a flat summary record
// and runs the validation battery over them. Everything here is pure
// counting over values already computed upstream.
package stats

import (
	"github.com/pdiddy/corpus-audit/internal/citegraph"
	"github.com/pdiddy/corpus-audit/internal/extract"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

// Summary is the flat statistics record for one run.
type Summary struct {
	TotalPapers                int     `json:"total_papers" yaml:"total_papers"`
	TotalCitations             int     `json:"total_citations" yaml:"total_citations"`
	UniqueAuthorsRaw           int     `json:"unique_authors_raw" yaml:"unique_authors_raw"`
	UniqueAuthorsResolved      int     `json:"unique_authors_resolved" yaml:"unique_authors_resolved"`
	UniqueInstitutionsRaw      int     `json:"unique_institutions_raw" yaml:"unique_institutions_raw"`
	UniqueInstitutionsResolved int     `json:"unique_institutions_resolved" yaml:"unique_institutions_resolved"`
	PapersMissingAbstract      int     `json:"papers_with_missing_abstract" yaml:"papers_with_missing_abstract"`
	PapersMissingKeywords      int     `json:"papers_with_missing_keywords" yaml:"papers_with_missing_keywords"`
	OrphanCitationCount        int     `json:"orphan_citation_count" yaml:"orphan_citation_count"`
	SelfCitationCount          int     `json:"self_citation_count" yaml:"self_citation_count"`
	AvgCitationsPerPaper       float64 `json:"avg_citations_per_paper" yaml:"avg_citations_per_paper"`
	MostCommonVenue            string  `json:"most_common_venue" yaml:"most_common_venue"`
	YearMin                    int     `json:"year_min" yaml:"year_min"`
	YearMax                    int     `json:"year_max" yaml:"year_max"`
	CitationRingCount          int     `json:"citation_ring_count" yaml:"citation_ring_count"`
	TemporalAnomalyCount       int     `json:"temporal_anomaly_count" yaml:"temporal_anomaly_count"`
	TypoCorrectionCount        int     `json:"typo_correction_count" yaml:"typo_correction_count"`
	AffiliationConflictCount   int     `json:"affiliation_conflict_count" yaml:"affiliation_conflict_count"`
}

// Summarize derives the summary record. An empty corpus yields zero values,
// never a division by zero.
func Summarize(
	papers []types.Paper,
	citations []types.CitationEdge,
	entities extract.Result,
	graph citegraph.Analysis,
	typoCorrections []types.TypoCorrection,
) Summary {
	rawAuthors := make(map[string]bool)
	rawInstitutions := make(map[string]bool)
	venueCounts := make(map[string]int)
	var venueOrder []string
	missingAbstract, missingKeywords := 0, 0
	yearMin, yearMax := 0, 0

	for i, p := range papers {
		for _, a := range p.Authors {
			rawAuthors[a] = true
		}
		if p.Institution != "" {
			rawInstitutions[p.Institution] = true
		}
		if p.Abstract == "" {
			missingAbstract++
		}
		if len(p.Keywords) == 0 {
			missingKeywords++
		}
		if p.Venue != "" {
			if venueCounts[p.Venue] == 0 {
				venueOrder = append(venueOrder, p.Venue)
			}
			venueCounts[p.Venue]++
		}
		if i == 0 || p.Year < yearMin {
			yearMin = p.Year
		}
		if i == 0 || p.Year > yearMax {
			yearMax = p.Year
		}
	}

	mostCommon := ""
	for _, v := range venueOrder {
		if mostCommon == "" || venueCounts[v] > venueCounts[mostCommon] {
			mostCommon = v
		}
	}

	avgCitations := 0.0
	if len(papers) > 0 {
		avgCitations = float64(len(citations)) / float64(len(papers))
	}

	return Summary{
		TotalPapers:                len(papers),
		TotalCitations:             len(citations),
		UniqueAuthorsRaw:           len(rawAuthors),
		UniqueAuthorsResolved:      len(entities.Authors),
		UniqueInstitutionsRaw:      len(rawInstitutions),
		UniqueInstitutionsResolved: len(entities.Institutions),
		PapersMissingAbstract:      missingAbstract,
		PapersMissingKeywords:      missingKeywords,
		OrphanCitationCount:        len(graph.OrphanCitations),
		SelfCitationCount:          len(graph.SelfCitations),
		AvgCitationsPerPaper:       avgCitations,
		MostCommonVenue:            mostCommon,
		YearMin:                    yearMin,
		YearMax:                    yearMax,
		CitationRingCount:          len(graph.RingPapers),
		TemporalAnomalyCount:       len(graph.TemporalAnomalies),
		TypoCorrectionCount:        len(typoCorrections),
		AffiliationConflictCount:   len(entities.AffiliationConflicts),
	}
}
