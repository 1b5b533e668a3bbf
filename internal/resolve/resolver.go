// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"slices"

	"github.com/pdiddy/corpus-audit/pkg/types"
)

// Author resolves an author mention to a canonical name. When institution
// context is available it is consulted first: the reference entities carrying
// this surface form are scanned (in sorted id order) and the first whose
// primary institution matches the resolved context wins. Only when no
// candidate matches does the flat map apply. The ordering matters: for a
// colliding form like "J. Smith" the flat map holds a single arbitrary
// winner, and consulting it first would collapse two people into one.
//
// Unknown forms pass through unchanged; resolution never fails.
func Author(name, institution string, m Maps, ref types.ReferenceData) string {
	if institution != "" {
		instCanonical := m.LookupInstitution(institution)
		for _, id := range ref.AuthorIDs() {
			auth := ref.Authors[id]
			if auth.CanonicalName != name && !slices.Contains(auth.KnownVariations, name) {
				continue
			}
			if institutionMatches(auth.PrimaryInstitution, instCanonical, ref) {
				return auth.CanonicalName
			}
		}
	}
	return m.LookupAuthor(name)
}

// institutionMatches reports whether the institution referenced by primaryID
// matches the resolved context institution by id, canonical name, or any
// known variation.
func institutionMatches(primaryID, instCanonical string, ref types.ReferenceData) bool {
	if primaryID == instCanonical {
		return true
	}
	inst, ok := ref.Institutions[primaryID]
	if !ok {
		return false
	}
	return inst.CanonicalName == instCanonical || slices.Contains(inst.KnownVariations, instCanonical)
}

// Institution resolves an institution mention through the flat map. Empty
// input passes through empty; unknown forms pass through unchanged.
func Institution(name string, m Maps) string {
	if name == "" {
		return ""
	}
	return m.LookupInstitution(name)
}
