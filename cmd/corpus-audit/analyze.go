// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/corpus-audit/internal/dataio"
	"github.com/pdiddy/corpus-audit/internal/pipeline"
	"github.com/pdiddy/corpus-audit/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <corpus-dir>",
	Short: "Run the full analysis pipeline over a corpus directory",
	Long: `Analyze loads papers_metadata.json, citations.csv, and
author_affiliations.json from the corpus directory, runs entity resolution
and citation-graph analysis, and writes the structured report to stdout or
--output. With --save the run is also persisted to the SQLite history.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("output", "", "write the report to this file instead of stdout")
	analyzeCmd.Flags().String("format", "json", "report format: json or yaml")
	analyzeCmd.Flags().Bool("save", false, "persist the run to the history database")
	analyzeCmd.Flags().String("db", "corpus-audit.db", "history database path (with --save)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	papers, citations, ref, err := dataio.LoadCorpus(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d papers, %d citations, %d reference authors\n",
		len(papers), len(citations), len(ref.Authors))

	res, err := pipeline.Run(papers, citations, ref, pipelineConfig())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr,
		"Resolved %d authors, %d institutions; %d orphans, %d self-citations, %d ring papers, %d temporal anomalies\n",
		len(res.Entities.Authors), len(res.Entities.Institutions),
		len(res.Graph.OrphanCitations), len(res.Graph.SelfCitations),
		len(res.Graph.RingPapers), len(res.Graph.TemporalAnomalies))

	if save, _ := cmd.Flags().GetBool("save"); save {
		dbPath, _ := cmd.Flags().GetString("db")
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()
		runID, err := s.SaveRun(context.Background(), res)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved run %d to %s\n", runID, dbPath)
	}

	if err := writeReport(cmd, res); err != nil {
		return err
	}

	if !res.Report.ValidationSummary.AllChecksPassed {
		return fmt.Errorf("validation failed: %s",
			strings.Join(res.Report.ValidationSummary.FailedChecks, ", "))
	}
	return nil
}

func writeReport(cmd *cobra.Command, res *pipeline.Result) error {
	format, _ := cmd.Flags().GetString("format")
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(res.Report, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(res.Report)
	default:
		return fmt.Errorf("unknown format %q: use json or yaml", format)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Report written to", output)
	return nil
}
