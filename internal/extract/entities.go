// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract aggregates resolved entities across the corpus: canonical
// authors and institutions with their paper sets and observed surface forms,
// keyword frequencies, method mentions, and the audit trail of ambiguous
// resolutions and affiliation conflicts.
package extract

import (
	"github.com/pdiddy/corpus-audit/internal/resolve"
	"github.com/pdiddy/corpus-audit/pkg/types"
)

// Result holds everything the extractor produces in one pass over the papers.
type Result struct {
	// Authors lists the per-canonical-author aggregates in first-seen order.
	Authors []types.ResolvedEntity

	// Institutions lists the per-canonical-institution aggregates in
	// first-seen order.
	Institutions []types.ResolvedEntity

	// Topics is the keyword frequency table over all papers.
	Topics map[string]int

	// Methods lists the configured method phrases found in at least one
	// abstract, in vocabulary order.
	Methods []string

	// AmbiguousResolutions audits every resolution of a colliding surface
	// form that had institution context available.
	AmbiguousResolutions []types.AmbiguousResolution

	// AffiliationConflicts lists papers asserting an institution for an
	// author that differs from the author's primary institution.
	AffiliationConflicts []types.AffiliationConflict
}

// aggregator accumulates one entity class keyed by canonical name while
// remembering first-seen order.
type aggregator struct {
	byName map[string]*entityAgg
	order  []string
}

type entityAgg struct {
	paperIDs   []string
	variations []string
	seen       map[string]bool
}

func newAggregator() *aggregator {
	return &aggregator{byName: make(map[string]*entityAgg)}
}

func (a *aggregator) add(canonical, surface, paperID string) {
	agg, ok := a.byName[canonical]
	if !ok {
		agg = &entityAgg{seen: make(map[string]bool)}
		a.byName[canonical] = agg
		a.order = append(a.order, canonical)
	}
	agg.paperIDs = append(agg.paperIDs, paperID)
	if !agg.seen[surface] {
		agg.seen[surface] = true
		agg.variations = append(agg.variations, surface)
	}
}

func (a *aggregator) entities() []types.ResolvedEntity {
	out := make([]types.ResolvedEntity, 0, len(a.order))
	for _, name := range a.order {
		agg := a.byName[name]
		out = append(out, types.ResolvedEntity{
			Name:           name,
			PaperIDs:       agg.paperIDs,
			NameVariations: agg.variations,
		})
	}
	return out
}

// Entities runs the extraction pass. Each author mention is resolved with
// the paper's institution as context; the paper's institution is resolved
// through the flat map. All malformed-but-expected conditions (missing
// institution, colliding forms, conflicting affiliations) become findings,
// never errors.
func Entities(papers []types.Paper, ref types.ReferenceData, maps resolve.Maps, cfg types.PipelineConfig) Result {
	authors := newAggregator()
	institutions := newAggregator()
	topics := make(map[string]int)
	var ambiguous []types.AmbiguousResolution
	var conflicts []types.AffiliationConflict

	for _, paper := range papers {
		for _, surface := range paper.Authors {
			canonical := resolve.Author(surface, paper.Institution, maps, ref)
			authors.add(canonical, surface, paper.PaperID)

			if maps.AmbiguousForms[surface] && paper.Institution != "" {
				ambiguous = append(ambiguous, types.AmbiguousResolution{
					NameVariation:   surface,
					ResolvedTo:      canonical,
					InstitutionUsed: paper.Institution,
					Reasoning:       "used institution context",
				})
			}
		}

		if paper.Institution != "" {
			resolvedInst := resolve.Institution(paper.Institution, maps)
			institutions.add(resolvedInst, paper.Institution, paper.PaperID)
			conflicts = append(conflicts, affiliationConflicts(paper, resolvedInst, maps, ref)...)
		}

		for _, kw := range paper.Keywords {
			topics[kw]++
		}
	}

	return Result{
		Authors:              authors.entities(),
		Institutions:         institutions.entities(),
		Topics:               topics,
		Methods:              MethodMentions(papers, cfg.MethodVocabulary),
		AmbiguousResolutions: ambiguous,
		AffiliationConflicts: conflicts,
	}
}

// affiliationConflicts compares the paper's resolved institution against the
// primary institution of every reference entity owning the resolved canonical
// name. Colliding canonical names can yield one conflict per owning entity.
func affiliationConflicts(paper types.Paper, resolvedInst string, maps resolve.Maps, ref types.ReferenceData) []types.AffiliationConflict {
	var conflicts []types.AffiliationConflict
	for _, surface := range paper.Authors {
		canonical := resolve.Author(surface, paper.Institution, maps, ref)
		for _, id := range ref.AuthorIDs() {
			auth := ref.Authors[id]
			if auth.CanonicalName != canonical {
				continue
			}
			expected := ref.Institutions[auth.PrimaryInstitution].CanonicalName
			if expected != "" && expected != resolvedInst {
				conflicts = append(conflicts, types.AffiliationConflict{
					PaperID:             paper.PaperID,
					Author:              canonical,
					ListedInstitution:   resolvedInst,
					ExpectedInstitution: expected,
				})
			}
		}
	}
	return conflicts
}
