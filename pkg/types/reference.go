// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// AuthorRef is one author entity from the reference data. Two distinct
// AuthorRefs may share a canonical name or overlapping variations; they
// remain distinct entities, told apart only by PrimaryInstitution.
type AuthorRef struct {
	// ID is the reference-data key for this author (e.g. "auth_003").
	ID string `json:"id" yaml:"id"`

	// CanonicalName is the single authoritative name for this author.
	CanonicalName string `json:"canonical_name" yaml:"canonical_name"`

	// KnownVariations lists surface forms observed for this author
	// (abbreviations, initials, alternate orderings).
	KnownVariations []string `json:"known_variations" yaml:"known_variations"`

	// PrimaryInstitution is the InstitutionRef id this author belongs to.
	PrimaryInstitution string `json:"primary_institution" yaml:"primary_institution"`
}

// InstitutionRef is one institution entity from the reference data.
type InstitutionRef struct {
	// ID is the reference-data key for this institution (e.g. "inst_001").
	ID string `json:"id" yaml:"id"`

	// CanonicalName is the single authoritative name for this institution.
	CanonicalName string `json:"canonical_name" yaml:"canonical_name"`

	// KnownVariations lists surface forms observed for this institution.
	KnownVariations []string `json:"known_variations" yaml:"known_variations"`

	// Country is the institution's country.
	Country string `json:"country" yaml:"country"`
}

// ReferenceData is the full author/institution reference set consumed by
// the resolver. Treated as read-only for the duration of a pipeline run;
// the resolver never writes through it.
type ReferenceData struct {
	Authors      map[string]AuthorRef      `json:"authors" yaml:"authors"`
	Institutions map[string]InstitutionRef `json:"institutions" yaml:"institutions"`
}

// AuthorIDs returns the author reference ids in sorted order so that
// candidate scans over the map are deterministic.
func (r ReferenceData) AuthorIDs() []string {
	ids := make([]string, 0, len(r.Authors))
	for id := range r.Authors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
