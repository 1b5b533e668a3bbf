// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResolvedEntity aggregates everything observed for one canonical author or
// institution: the papers it appears on and the surface forms it appeared as.
type ResolvedEntity struct {
	// Name is the canonical name the entity resolved to.
	Name string `json:"name" yaml:"name"`

	// PaperIDs lists the papers the entity appears on, one entry per
	// appearance, in corpus order. A paper listing the same author twice
	// legitimately contributes two entries.
	PaperIDs []string `json:"paper_ids" yaml:"paper_ids"`

	// NameVariations holds the distinct surface forms observed, in first-seen order.
	NameVariations []string `json:"name_variations" yaml:"name_variations"`
}

// TypoCorrection records one known typographic error and its correction.
type TypoCorrection struct {
	Original  string `json:"original" yaml:"original"`
	Corrected string `json:"corrected" yaml:"corrected"`

	// Confidence is 1 minus the normalized edit distance between the
	// original and corrected forms.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// OrphanCitation is a citation whose cited paper does not exist in the corpus.
type OrphanCitation struct {
	CitingPaper string `json:"citing_paper" yaml:"citing_paper"`
	CitedPaper  string `json:"cited_paper" yaml:"cited_paper"`
}

// TemporalAnomaly is a citation whose citing paper was published strictly
// before the paper it cites.
type TemporalAnomaly struct {
	CitingPaper string `json:"citing_paper" yaml:"citing_paper"`
	CitedPaper  string `json:"cited_paper" yaml:"cited_paper"`
	CitingYear  int    `json:"citing_year" yaml:"citing_year"`
	CitedYear   int    `json:"cited_year" yaml:"cited_year"`
}

// AmbiguousResolution is one audit record for a surface form that collides
// across multiple reference identities and was disambiguated by institution
// context.
type AmbiguousResolution struct {
	NameVariation   string `json:"name_variation" yaml:"name_variation"`
	ResolvedTo      string `json:"resolved_to" yaml:"resolved_to"`
	InstitutionUsed string `json:"institution_used" yaml:"institution_used"`
	Reasoning       string `json:"reasoning" yaml:"reasoning"`
}

// AffiliationConflict is a paper asserting an institution for an author that
// differs from the author's reference-recorded primary institution.
type AffiliationConflict struct {
	PaperID             string `json:"paper_id" yaml:"paper_id"`
	Author              string `json:"author" yaml:"author"`
	ListedInstitution   string `json:"listed_institution" yaml:"listed_institution"`
	ExpectedInstitution string `json:"expected_institution" yaml:"expected_institution"`
}
