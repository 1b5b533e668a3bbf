// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citegraph builds the directed citation graph from the edge list
// and analyzes it: degree statistics, orphan and self citations, temporal
// violations, citation rings, and PageRank centrality.
package citegraph

import (
	"sort"

	"github.com/pdiddy/corpus-audit/pkg/types"
)

// Analysis holds everything the graph builder produces for one edge list.
type Analysis struct {
	// Adjacency maps each known citing paper to its cited targets, one entry
	// per asserted citation. Targets may include unknown paper ids.
	Adjacency map[string][]string

	// InDegree and OutDegree are defined for every known paper id, zero
	// included. OutDegree counts asserted citations, valid or not.
	InDegree  map[string]int
	OutDegree map[string]int

	// OrphanCitations lists edges whose cited paper is not in the corpus.
	OrphanCitations []types.OrphanCitation

	// SelfCitations lists papers citing themselves, deduplicated, in
	// first-seen order.
	SelfCitations []string

	// TemporalAnomalies lists citations of papers published strictly later
	// than the citing paper.
	TemporalAnomalies []types.TemporalAnomaly

	// RingPapers lists every paper belonging to at least one citation cycle
	// of length >= 3, each once, in corpus order.
	RingPapers []string

	// PageRank maps each known paper id to its centrality score. Scores sum
	// to ~1 over a nonempty graph.
	PageRank map[string]float64

	// TopCited ranks up to ten papers by raw in-degree, descending, ties
	// broken by corpus order.
	TopCited []string
}

// Analyze walks the edge list once to build the adjacency and degree maps
// and collect anomaly findings, then runs ring detection and PageRank over
// the subgraph restricted to known endpoints. Malformed edges (orphans,
// self loops) are findings, never errors; the analysis always completes.
func Analyze(papers []types.Paper, edges []types.CitationEdge, cfg types.PipelineConfig) Analysis {
	known := make(map[string]bool, len(papers))
	years := make(map[string]int, len(papers))
	order := make([]string, 0, len(papers))
	for _, p := range papers {
		if !known[p.PaperID] {
			order = append(order, p.PaperID)
		}
		known[p.PaperID] = true
		years[p.PaperID] = p.Year
	}

	a := Analysis{
		Adjacency: make(map[string][]string),
		InDegree:  make(map[string]int, len(order)),
		OutDegree: make(map[string]int, len(order)),
	}
	for _, id := range order {
		a.InDegree[id] = 0
		a.OutDegree[id] = 0
	}

	selfSeen := make(map[string]bool)
	for _, e := range edges {
		src, dst := e.CitingPaper, e.CitedPaper

		if known[src] {
			a.Adjacency[src] = append(a.Adjacency[src], dst)
			a.OutDegree[src]++
		}
		if known[dst] {
			a.InDegree[dst]++
		} else {
			a.OrphanCitations = append(a.OrphanCitations, types.OrphanCitation{
				CitingPaper: src,
				CitedPaper:  dst,
			})
		}
		if src == dst && !selfSeen[src] {
			selfSeen[src] = true
			a.SelfCitations = append(a.SelfCitations, src)
		}

		srcYear, srcKnown := years[src]
		dstYear, dstKnown := years[dst]
		if srcKnown && dstKnown && srcYear < dstYear {
			a.TemporalAnomalies = append(a.TemporalAnomalies, types.TemporalAnomaly{
				CitingPaper: src,
				CitedPaper:  dst,
				CitingYear:  srcYear,
				CitedYear:   dstYear,
			})
		}
	}

	// Cycle and centrality analysis run on the graph with unknown endpoints
	// excluded; duplicate edges collapse to one successor.
	valid := validAdjacency(order, a.Adjacency, known)

	a.RingPapers = ringPapers(order, valid, cfg.MaxCycleLength)
	a.PageRank = pageRank(order, valid, cfg.PageRank)
	a.TopCited = topCited(order, a.InDegree, 10)

	return a
}

// validAdjacency restricts the adjacency to known endpoints and deduplicates
// parallel edges, keeping successor lists in first-seen order.
func validAdjacency(order []string, adjacency map[string][]string, known map[string]bool) map[string][]string {
	valid := make(map[string][]string, len(order))
	for _, src := range order {
		seen := make(map[string]bool)
		for _, dst := range adjacency[src] {
			if !known[dst] || seen[dst] {
				continue
			}
			seen[dst] = true
			valid[src] = append(valid[src], dst)
		}
	}
	return valid
}

// topCited ranks papers by raw in-degree, descending. The sort is a stable
// pass over corpus order so equal degrees keep their encounter order.
func topCited(order []string, inDegree map[string]int, limit int) []string {
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return inDegree[ranked[i]] > inDegree[ranked[j]]
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
