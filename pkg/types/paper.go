// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper holds the metadata record for one paper in the corpus.
// Records arrive as-is from the host data files; surface strings
// (author names, institution, venue) are raw and may contain typos,
// abbreviations, or colliding short forms.
type Paper struct {
	// PaperID is the unique corpus key. Duplicates are a data-quality
	// finding, not a load error.
	PaperID string `json:"paper_id" yaml:"paper_id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists raw author name strings in source order. The same
	// person may appear under different surface forms across papers.
	Authors []string `json:"authors" yaml:"authors"`

	// Institution is the affiliation asserted for the paper as a whole,
	// not per author. Empty when the record carries no affiliation.
	Institution string `json:"institution" yaml:"institution"`

	// Abstract may be empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Keywords may be empty.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Venue is the raw venue string before normalization.
	Venue string `json:"venue" yaml:"venue"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// PublicationDate is the full publication date string (ISO 8601).
	PublicationDate string `json:"publication_date" yaml:"publication_date"`
}

// CitationEdge is one directed citation assertion between two raw paper ids.
// Either endpoint may reference a paper missing from the corpus, and the two
// may be equal; both cases are findings the graph builder reports.
type CitationEdge struct {
	// CitingPaper is the id of the paper making the citation.
	CitingPaper string `json:"citing_paper" yaml:"citing_paper"`

	// CitedPaper is the id of the paper being cited.
	CitedPaper string `json:"cited_paper" yaml:"cited_paper"`
}
