// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the full analysis end to end: resolution maps,
// entity extraction, citation graph analysis, statistics, validation, and
// report assembly. One call, one immutable input snapshot, one Result.
package pipeline

import (
	"fmt"

	"github.com/pdiddy/corpus-audit/internal/citegraph"
	"github.com/pdiddy/corpus-audit/internal/extract"
	"github.com/pdiddy/corpus-audit/internal/report"
	"github.com/pdiddy/corpus-audit/internal/resolve"
	"github.com/pdiddy/corpus-audit/internal/stats"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

// Result carries every artifact a run produces. All fields are read-only
// once Run returns; downstream consumers pick what they need.
type Result struct {
	Papers    []types.Paper
	Citations []types.CitationEdge
	Reference types.ReferenceData

	Maps                resolve.Maps
	VenueNormalizations map[string]string

	Entities extract.Result
	Graph    citegraph.Analysis

	Summary stats.Summary
	Checks  map[string]bool
	Report  types.Report
}

// Run executes the pipeline over one input snapshot. It fails fast only on
// contract violations (a record missing a required field); malformed data
// (orphans, typos, collisions, rings) become findings inside the Result,
// and structural problems (empty corpus, duplicate ids) surface as failed
// validation checks alongside a still-assembled report.
//
// Run is a pure function of its inputs plus the clock, so concurrent runs
// over independent inputs need no coordination; callers sharing reference
// data must treat it as read-only, which Run does.
func Run(papers []types.Paper, citations []types.CitationEdge, ref types.ReferenceData, cfg types.PipelineConfig) (*Result, error) {
	if err := checkRequiredFields(papers, citations); err != nil {
		return nil, err
	}

	maps := resolve.BuildMaps(ref, cfg)
	entities := extract.Entities(papers, ref, maps, cfg)
	graph := citegraph.Analyze(papers, citations, cfg)
	summary := stats.Summarize(papers, citations, entities, graph, maps.TypoCorrections)
	checks := stats.Checks(stats.CheckInput{
		Papers:              papers,
		Citations:           citations,
		Reference:           ref,
		Maps:                maps,
		Entities:            entities,
		Graph:               graph,
		VenueNormalizations: cfg.VenueNormalizations,
		FuzzyMatchThreshold: cfg.FuzzyMatchThreshold,
	})

	return &Result{
		Papers:              papers,
		Citations:           citations,
		Reference:           ref,
		Maps:                maps,
		VenueNormalizations: cfg.VenueNormalizations,
		Entities:            entities,
		Graph:               graph,
		Summary:             summary,
		Checks:              checks,
		Report:              report.Assemble(papers, citations, entities, graph, maps.TypoCorrections, summary, checks),
	}, nil
}

// checkRequiredFields enforces the record contract. A record without its
// identifying fields would poison every aggregate silently, so this is the
// one place the pipeline refuses to continue.
func checkRequiredFields(papers []types.Paper, citations []types.CitationEdge) error {
	for i, p := range papers {
		switch {
		case p.PaperID == "":
			return fmt.Errorf("paper %d: missing required field paper_id", i)
		case p.Title == "":
			return fmt.Errorf("paper %d (%s): missing required field title", i, p.PaperID)
		case p.Year == 0:
			return fmt.Errorf("paper %d (%s): missing required field year", i, p.PaperID)
		}
	}
	for i, e := range citations {
		if e.CitingPaper == "" || e.CitedPaper == "" {
			return fmt.Errorf("citation %d: missing citing_paper or cited_paper", i)
		}
	}
	return nil
}
