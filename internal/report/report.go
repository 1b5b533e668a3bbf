// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report folds every upstream artifact into the final structured
// report. Pure restructuring: top-N slicing, averages, and label formatting,
// no new analysis.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/pdiddy/corpus-audit/internal/citegraph"
	"github.com/pdiddy/corpus-audit/internal/extract"
	"github.com/pdiddy/corpus-audit/internal/stats"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

const taskName = "Research Paper Entity Extraction and Citation Analysis"

// now returns the report timestamp; tests override it for reproducibility.
var now = time.Now

// Assemble builds the final report from the upstream outputs.
func Assemble(
	papers []types.Paper,
	citations []types.CitationEdge,
	entities extract.Result,
	graph citegraph.Analysis,
	typoCorrections []types.TypoCorrection,
	summary stats.Summary,
	checks map[string]bool,
) types.Report {
	titles := make(map[string]string, len(papers))
	missingInstitutions := 0
	for _, p := range papers {
		titles[p.PaperID] = p.Title
		if p.Institution == "" {
			missingInstitutions++
		}
	}

	return types.Report{
		Metadata: types.ReportMetadata{
			Task:               taskName,
			PapersAnalyzed:     len(papers),
			ExecutionTimestamp: now().UTC().Format(time.RFC3339),
		},
		EntityExtraction: types.EntityExtraction{
			Authors:      entityGroup(entities.Authors, 5),
			Institutions: entityGroup(entities.Institutions, 5),
			Topics:       topicSummary(entities.Topics, 10),
		},
		CitationAnalysis: types.CitationAnalysis{
			TotalCitations:    len(citations),
			TopCitedPapers:    topCitedDetails(graph, titles),
			OrphanCitations:   graph.OrphanCitations,
			SelfCitations:     graph.SelfCitations,
			NetworkStatistics: networkStats(graph),
		},
		AnomalyDetection: types.AnomalyDetection{
			CitationRings: types.RingSummary{
				Detected:       len(graph.RingPapers) > 0,
				PapersInvolved: head(graph.RingPapers, 10),
				Description:    "Papers with circular citation patterns",
			},
			TemporalAnomalies:    temporalSummary(graph.TemporalAnomalies, 5),
			AmbiguousResolutions: headAmbiguous(entities.AmbiguousResolutions, 5),
			TypoCorrections:      typoCorrections,
			AffiliationConflicts: conflictSummaries(entities.AffiliationConflicts),
		},
		DataQuality: types.DataQuality{
			MissingAbstracts:       summary.PapersMissingAbstract,
			MissingKeywords:        summary.PapersMissingKeywords,
			MissingInstitutions:    missingInstitutions,
			DuplicateAuthorEntries: duplicateAuthorEntries(entities.Authors),
		},
		ValidationSummary: types.ValidationSummary{
			AllChecksPassed: stats.AllPassed(checks),
			FailedChecks:    stats.FailedChecks(checks),
		},
	}
}

// entityGroup ranks entities by paper count, descending, ties broken by
// first-seen order, and keeps the top n.
func entityGroup(entities []types.ResolvedEntity, n int) types.EntityGroupSummary {
	counts := make([]types.EntityCount, 0, len(entities))
	for _, e := range entities {
		counts = append(counts, types.EntityCount{Name: e.Name, PaperCount: len(e.PaperIDs)})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].PaperCount > counts[j].PaperCount
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return types.EntityGroupSummary{
		TotalUnique:     len(entities),
		TopByPaperCount: counts,
	}
}

// topicSummary ranks topics by frequency, descending, ties broken
// alphabetically so the ranking is stable.
func topicSummary(topics map[string]int, n int) types.TopicSummary {
	ranked := make([]types.TopicCount, 0, len(topics))
	for topic, count := range topics {
		ranked = append(ranked, types.TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Topic < ranked[j].Topic
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return types.TopicSummary{
		TotalUnique:    len(topics),
		TopByFrequency: ranked,
	}
}

func topCitedDetails(graph citegraph.Analysis, titles map[string]string) []types.CitedPaperDetail {
	details := make([]types.CitedPaperDetail, 0, len(graph.TopCited))
	for _, pid := range graph.TopCited {
		title, ok := titles[pid]
		if !ok {
			continue
		}
		details = append(details, types.CitedPaperDetail{
			PaperID:       pid,
			CitationCount: graph.InDegree[pid],
			Title:         title,
		})
	}
	return details
}

func networkStats(graph citegraph.Analysis) types.NetworkStatistics {
	var s types.NetworkStatistics
	n := len(graph.InDegree)
	if n == 0 {
		return s
	}
	for _, d := range graph.InDegree {
		s.AvgInDegree += float64(d)
		if d > s.MaxInDegree {
			s.MaxInDegree = d
		}
	}
	for _, d := range graph.OutDegree {
		s.AvgOutDegree += float64(d)
		if d > s.MaxOutDegree {
			s.MaxOutDegree = d
		}
	}
	s.AvgInDegree /= float64(n)
	s.AvgOutDegree /= float64(n)
	return s
}

func temporalSummary(anomalies []types.TemporalAnomaly, n int) types.TemporalSummary {
	examples := make([]types.TemporalExample, 0, min(n, len(anomalies)))
	for _, a := range anomalies[:min(n, len(anomalies))] {
		examples = append(examples, types.TemporalExample{
			Citing: a.CitingPaper,
			Cited:  a.CitedPaper,
			Issue:  fmt.Sprintf("Year %d cites %d", a.CitingYear, a.CitedYear),
		})
	}
	return types.TemporalSummary{Count: len(anomalies), Examples: examples}
}

func conflictSummaries(conflicts []types.AffiliationConflict) []types.ConflictSummary {
	out := make([]types.ConflictSummary, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, types.ConflictSummary{
			PaperID:  c.PaperID,
			Author:   c.Author,
			Conflict: fmt.Sprintf("Listed at %s, expected %s", c.ListedInstitution, c.ExpectedInstitution),
		})
	}
	return out
}

// duplicateAuthorEntries counts aggregates that list the same paper more
// than once, i.e. papers crediting one person twice under any surface form.
func duplicateAuthorEntries(authors []types.ResolvedEntity) int {
	count := 0
	for _, a := range authors {
		seen := make(map[string]bool, len(a.PaperIDs))
		for _, pid := range a.PaperIDs {
			if seen[pid] {
				count++
				break
			}
			seen[pid] = true
		}
	}
	return count
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func headAmbiguous(items []types.AmbiguousResolution, n int) []types.AmbiguousResolution {
	if len(items) > n {
		return items[:n]
	}
	return items
}
