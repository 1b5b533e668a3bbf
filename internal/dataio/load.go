// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataio loads the corpus input files: paper metadata (JSON),
// citation edges (CSV), and author/institution reference data (JSON or
// YAML). Loaders validate required fields and fail fast with the offending
// record; everything else is left to the pipeline to judge.
package dataio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/corpus-audit/pkg/types"
)

// Corpus file names, matching the dataset layout the harness generates.
const (
	papersFile    = "papers_metadata.json"
	citationsFile = "citations.csv"
	referenceFile = "author_affiliations.json"
)

// LoadPapers reads a JSON array of paper records and validates the required
// fields on each.
func LoadPapers(path string) ([]types.Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading papers file: %w", err)
	}

	var papers []types.Paper
	if err := json.Unmarshal(data, &papers); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	for i, p := range papers {
		switch {
		case p.PaperID == "":
			return nil, fmt.Errorf("%s: paper %d: missing required field paper_id", filepath.Base(path), i)
		case p.Title == "":
			return nil, fmt.Errorf("%s: paper %d (%s): missing required field title", filepath.Base(path), i, p.PaperID)
		case p.Year == 0:
			return nil, fmt.Errorf("%s: paper %d (%s): missing required field year", filepath.Base(path), i, p.PaperID)
		}
	}
	return papers, nil
}

// LoadCitations reads citation edges from a CSV file with a
// citing_paper,cited_paper header.
func LoadCitations(path string) ([]types.CitationEdge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening citations file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading citations header: %w", err)
	}
	citingCol, citedCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "citing_paper":
			citingCol = i
		case "cited_paper":
			citedCol = i
		}
	}
	if citingCol < 0 || citedCol < 0 {
		return nil, fmt.Errorf("%s: header must name citing_paper and cited_paper columns", filepath.Base(path))
	}

	var edges []types.CitationEdge
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), line, err)
		}
		edge := types.CitationEdge{
			CitingPaper: strings.TrimSpace(record[citingCol]),
			CitedPaper:  strings.TrimSpace(record[citedCol]),
		}
		if edge.CitingPaper == "" || edge.CitedPaper == "" {
			return nil, fmt.Errorf("%s line %d: missing citing_paper or cited_paper", filepath.Base(path), line)
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

// LoadReference reads the author/institution reference data. The format is
// chosen by extension: .yaml/.yml parse as YAML, anything else as JSON.
// Entity ids are backfilled from the map keys when records omit them.
func LoadReference(path string) (types.ReferenceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ReferenceData{}, fmt.Errorf("reading reference file: %w", err)
	}

	var ref types.ReferenceData
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ref)
	default:
		err = json.Unmarshal(data, &ref)
	}
	if err != nil {
		return types.ReferenceData{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	for id, auth := range ref.Authors {
		if auth.CanonicalName == "" {
			return types.ReferenceData{}, fmt.Errorf("%s: author %s: missing required field canonical_name", filepath.Base(path), id)
		}
		if auth.ID == "" {
			auth.ID = id
			ref.Authors[id] = auth
		}
	}
	for id, inst := range ref.Institutions {
		if inst.CanonicalName == "" {
			return types.ReferenceData{}, fmt.Errorf("%s: institution %s: missing required field canonical_name", filepath.Base(path), id)
		}
		if inst.ID == "" {
			inst.ID = id
			ref.Institutions[id] = inst
		}
	}
	return ref, nil
}

// LoadCorpus loads all three inputs from their conventional names in dir.
func LoadCorpus(dir string) ([]types.Paper, []types.CitationEdge, types.ReferenceData, error) {
	papers, err := LoadPapers(filepath.Join(dir, papersFile))
	if err != nil {
		return nil, nil, types.ReferenceData{}, err
	}
	citations, err := LoadCitations(filepath.Join(dir, citationsFile))
	if err != nil {
		return nil, nil, types.ReferenceData{}, err
	}
	ref, err := LoadReference(filepath.Join(dir, referenceFile))
	if err != nil {
		return nil, nil, types.ReferenceData{}, err
	}
	return papers, citations, ref, nil
}
