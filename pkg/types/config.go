package types

// PageRankConfig holds the power-method parameters for centrality scoring.
type PageRankConfig struct {
	// Damping is the PageRank damping factor (default 0.85).
	Damping float64 `json:"damping" yaml:"damping"`

	// Tolerance is the L1 convergence threshold (default 1e-6).
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`

	// MaxIterations caps the power iteration count (default 100).
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
}

// PipelineConfig is the explicit configuration value passed into a pipeline
// run. Nothing here is package-level state, so runs with different
// configurations can execute concurrently without interference.
type PipelineConfig struct {
	PageRank PageRankConfig `json:"pagerank" yaml:"pagerank"`

	// MaxCycleLength bounds the elementary-cycle search during citation
	// ring detection (default 8). Cycle enumeration is exponential in the
	// worst case; the bound keeps ring detection tractable on large graphs.
	MaxCycleLength int `json:"max_cycle_length" yaml:"max_cycle_length"`

	// FuzzyMatchThreshold is the minimum similarity ratio for two surface
	// forms to count as a fuzzy match (default 0.8).
	FuzzyMatchThreshold float64 `json:"fuzzy_match_threshold" yaml:"fuzzy_match_threshold"`

	// TypoCorrections maps known typographic errors (author or institution
	// names) to their corrected forms. Merged into the resolution maps last.
	TypoCorrections map[string]string `json:"typo_corrections" yaml:"typo_corrections"`

	// VenueNormalizations maps venue name variants to canonical venue names.
	VenueNormalizations map[string]string `json:"venue_normalizations" yaml:"venue_normalizations"`

	// MethodVocabulary lists the method phrases looked up in abstracts.
	// Matching is a case-insensitive substring scan, not NLP.
	MethodVocabulary []string `json:"method_vocabulary" yaml:"method_vocabulary"`
}

// DefaultPipelineConfig returns the configuration the CLI ships with.
// Callers may override individual fields before starting a run.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		PageRank: PageRankConfig{
			Damping:       0.85,
			Tolerance:     1e-6,
			MaxIterations: 100,
		},
		MaxCycleLength:      8,
		FuzzyMatchThreshold: 0.8,
		TypoCorrections: map[string]string{
			"Jonh Smith":                           "John Smith",
			"Maria Gracia":                         "Maria Garcia",
			"Massachusets Institute of Technology": "Massachusetts Institute of Technology",
			"Standford University":                 "Stanford University",
		},
		VenueNormalizations: map[string]string{
			"NIPS":                                  "NeurIPS",
			"Neural Information Processing Systems": "NeurIPS",
			"IEEE/CVF CVPR":                         "CVPR",
			"Annual Meeting of the ACL":             "ACL",
			"International Conference on Machine Learning": "ICML",
		},
		MethodVocabulary: []string{
			"gradient descent",
			"attention mechanism",
			"transformer",
			"convolutional neural network",
			"reinforcement learning",
			"variational inference",
			"contrastive learning",
		},
	}
}
