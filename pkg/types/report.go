// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Report is the final structured output of one pipeline run. Section and
// key names are fixed; downstream consumers match on them.
type Report struct {
	Metadata          ReportMetadata    `json:"metadata" yaml:"metadata"`
	EntityExtraction  EntityExtraction  `json:"entity_extraction" yaml:"entity_extraction"`
	CitationAnalysis  CitationAnalysis  `json:"citation_analysis" yaml:"citation_analysis"`
	AnomalyDetection  AnomalyDetection  `json:"anomaly_detection" yaml:"anomaly_detection"`
	DataQuality       DataQuality       `json:"data_quality" yaml:"data_quality"`
	ValidationSummary ValidationSummary `json:"validation_summary" yaml:"validation_summary"`
}

// ReportMetadata describes the run that produced the report.
type ReportMetadata struct {
	Task           string `json:"task" yaml:"task"`
	PapersAnalyzed int    `json:"papers_analyzed" yaml:"papers_analyzed"`

	// ExecutionTimestamp is RFC 3339. Excluded from idempotence comparisons.
	ExecutionTimestamp string `json:"execution_timestamp" yaml:"execution_timestamp"`
}

// EntityCount pairs a canonical entity name with its paper count.
type EntityCount struct {
	Name       string `json:"name" yaml:"name"`
	PaperCount int    `json:"paper_count" yaml:"paper_count"`
}

// TopicCount pairs a topic keyword with its corpus frequency.
type TopicCount struct {
	Topic string `json:"topic" yaml:"topic"`
	Count int    `json:"count" yaml:"count"`
}

// EntityGroupSummary summarizes one resolved entity class (authors or
// institutions).
type EntityGroupSummary struct {
	TotalUnique     int           `json:"total_unique" yaml:"total_unique"`
	TopByPaperCount []EntityCount `json:"top_5_by_paper_count" yaml:"top_5_by_paper_count"`
}

// TopicSummary summarizes the keyword frequency table.
type TopicSummary struct {
	TotalUnique    int          `json:"total_unique" yaml:"total_unique"`
	TopByFrequency []TopicCount `json:"top_10_by_frequency" yaml:"top_10_by_frequency"`
}

// EntityExtraction is the entity-resolution section of the report.
type EntityExtraction struct {
	Authors      EntityGroupSummary `json:"authors" yaml:"authors"`
	Institutions EntityGroupSummary `json:"institutions" yaml:"institutions"`
	Topics       TopicSummary       `json:"topics" yaml:"topics"`
}

// CitedPaperDetail describes one entry of the top-cited ranking.
type CitedPaperDetail struct {
	PaperID       string `json:"paper_id" yaml:"paper_id"`
	CitationCount int    `json:"citation_count" yaml:"citation_count"`
	Title         string `json:"title" yaml:"title"`
}

// NetworkStatistics holds degree aggregates over the citation graph.
type NetworkStatistics struct {
	AvgInDegree  float64 `json:"avg_in_degree" yaml:"avg_in_degree"`
	AvgOutDegree float64 `json:"avg_out_degree" yaml:"avg_out_degree"`
	MaxInDegree  int     `json:"max_in_degree" yaml:"max_in_degree"`
	MaxOutDegree int     `json:"max_out_degree" yaml:"max_out_degree"`
}

// CitationAnalysis is the citation-network section of the report.
type CitationAnalysis struct {
	TotalCitations    int                `json:"total_citations" yaml:"total_citations"`
	TopCitedPapers    []CitedPaperDetail `json:"top_10_cited_papers" yaml:"top_10_cited_papers"`
	OrphanCitations   []OrphanCitation   `json:"orphan_citations" yaml:"orphan_citations"`
	SelfCitations     []string           `json:"self_citations" yaml:"self_citations"`
	NetworkStatistics NetworkStatistics  `json:"network_statistics" yaml:"network_statistics"`
}

// RingSummary summarizes detected citation rings.
type RingSummary struct {
	Detected       bool     `json:"detected" yaml:"detected"`
	PapersInvolved []string `json:"papers_involved" yaml:"papers_involved"`
	Description    string   `json:"description" yaml:"description"`
}

// TemporalExample is one rendered temporal-anomaly example.
type TemporalExample struct {
	Citing string `json:"citing" yaml:"citing"`
	Cited  string `json:"cited" yaml:"cited"`
	Issue  string `json:"issue" yaml:"issue"`
}

// TemporalSummary summarizes temporal anomalies.
type TemporalSummary struct {
	Count    int               `json:"count" yaml:"count"`
	Examples []TemporalExample `json:"examples" yaml:"examples"`
}

// ConflictSummary is one rendered affiliation conflict.
type ConflictSummary struct {
	PaperID  string `json:"paper_id" yaml:"paper_id"`
	Author   string `json:"author" yaml:"author"`
	Conflict string `json:"conflict" yaml:"conflict"`
}

// AnomalyDetection is the anomaly section of the report.
type AnomalyDetection struct {
	CitationRings        RingSummary           `json:"citation_rings" yaml:"citation_rings"`
	TemporalAnomalies    TemporalSummary       `json:"temporal_anomalies" yaml:"temporal_anomalies"`
	AmbiguousResolutions []AmbiguousResolution `json:"ambiguous_resolutions" yaml:"ambiguous_resolutions"`
	TypoCorrections      []TypoCorrection      `json:"typo_corrections" yaml:"typo_corrections"`
	AffiliationConflicts []ConflictSummary     `json:"affiliation_conflicts" yaml:"affiliation_conflicts"`
}

// DataQuality counts missing or duplicated fields across the corpus.
type DataQuality struct {
	MissingAbstracts       int `json:"missing_abstracts" yaml:"missing_abstracts"`
	MissingKeywords        int `json:"missing_keywords" yaml:"missing_keywords"`
	MissingInstitutions    int `json:"missing_institutions" yaml:"missing_institutions"`
	DuplicateAuthorEntries int `json:"duplicate_author_entries" yaml:"duplicate_author_entries"`
}

// ValidationSummary rolls up the boolean validation battery.
type ValidationSummary struct {
	AllChecksPassed bool     `json:"all_checks_passed" yaml:"all_checks_passed"`
	FailedChecks    []string `json:"failed_checks" yaml:"failed_checks"`
}
