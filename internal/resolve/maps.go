// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve builds surface-to-canonical lookup tables from reference
// data and resolves noisy author and institution mentions against them,
// using institution context to disambiguate colliding name forms.
package resolve

import (
	"sort"
	"strings"

	"github.com/pdiddy/corpus-audit/pkg/types"
)

// Maps holds the read-only resolution tables for one pipeline run.
type Maps struct {
	// Authors maps author surface forms to canonical author names.
	Authors map[string]string

	// Institutions maps institution surface forms to canonical institution names.
	Institutions map[string]string

	// TypoCorrections lists the corrections merged into both maps, with a
	// similarity-derived confidence per entry.
	TypoCorrections []types.TypoCorrection

	// AmbiguousForms is the set of author surface forms that appear for two
	// or more reference entities with different primary institutions. Any
	// such form requires institution context to resolve correctly; the flat
	// Authors map is only a fallback for it.
	AmbiguousForms map[string]bool

	// typos maps lowercased typo surface forms to corrected names so that
	// a known typo resolves regardless of case.
	typos map[string]string
}

// BuildMaps constructs the resolution tables from reference data plus the
// configured typo table. Reference entities are walked in sorted id order so
// the result is identical across runs. The typo table is merged last; the
// reference data and typo table are known not to collide, so last-writer-wins
// never corrupts an unambiguous mapping.
func BuildMaps(ref types.ReferenceData, cfg types.PipelineConfig) Maps {
	m := Maps{
		Authors:        make(map[string]string),
		Institutions:   make(map[string]string),
		AmbiguousForms: make(map[string]bool),
		typos:          make(map[string]string),
	}

	// Author surface forms, plus the institutions each form is claimed by.
	formInstitutions := make(map[string]map[string]bool)
	claim := func(form, instID string) {
		if formInstitutions[form] == nil {
			formInstitutions[form] = make(map[string]bool)
		}
		formInstitutions[form][instID] = true
	}

	for _, id := range ref.AuthorIDs() {
		auth := ref.Authors[id]
		m.Authors[auth.CanonicalName] = auth.CanonicalName
		claim(auth.CanonicalName, auth.PrimaryInstitution)
		for _, v := range auth.KnownVariations {
			m.Authors[v] = auth.CanonicalName
			claim(v, auth.PrimaryInstitution)
		}
	}

	// A form claimed by entities at two or more institutions is ambiguous.
	for form, insts := range formInstitutions {
		if len(insts) >= 2 {
			m.AmbiguousForms[form] = true
		}
	}

	instIDs := make([]string, 0, len(ref.Institutions))
	for id := range ref.Institutions {
		instIDs = append(instIDs, id)
	}
	sort.Strings(instIDs)
	for _, id := range instIDs {
		inst := ref.Institutions[id]
		m.Institutions[inst.CanonicalName] = inst.CanonicalName
		for _, v := range inst.KnownVariations {
			m.Institutions[v] = inst.CanonicalName
		}
	}

	// Typo table last, in sorted order for a stable correction list.
	typoKeys := make([]string, 0, len(cfg.TypoCorrections))
	for orig := range cfg.TypoCorrections {
		typoKeys = append(typoKeys, orig)
	}
	sort.Strings(typoKeys)
	for _, orig := range typoKeys {
		corrected := cfg.TypoCorrections[orig]
		m.Authors[orig] = corrected
		m.Institutions[orig] = corrected
		m.typos[strings.ToLower(orig)] = corrected
		m.TypoCorrections = append(m.TypoCorrections, types.TypoCorrection{
			Original:   orig,
			Corrected:  corrected,
			Confidence: Similarity(orig, corrected),
		})
	}

	return m
}

// LookupAuthor resolves an author surface form through the flat map, falling
// back to a case-insensitive typo lookup, then to pass-through.
func (m Maps) LookupAuthor(name string) string {
	if canonical, ok := m.Authors[name]; ok {
		return canonical
	}
	if corrected, ok := m.typos[strings.ToLower(name)]; ok {
		return corrected
	}
	return name
}

// LookupInstitution resolves an institution surface form the same way.
func (m Maps) LookupInstitution(name string) string {
	if canonical, ok := m.Institutions[name]; ok {
		return canonical
	}
	if corrected, ok := m.typos[strings.ToLower(name)]; ok {
		return corrected
	}
	return name
}
