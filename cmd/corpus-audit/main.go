// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the corpus-audit CLI. It loads a
// research-paper corpus, runs the entity-resolution and citation-analysis
// pipeline, and manages the stored run history.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/corpus-audit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the corpus-audit CLI.
var rootCmd = &cobra.Command{
	Use:   "corpus-audit",
	Short: "Entity resolution and citation-graph analysis for paper corpora",
	Long: `corpus-audit analyzes a corpus of research-paper records and their
citation relationships. It resolves noisy author, institution, and venue
mentions to canonical identities, builds the citation graph, and flags
structural and temporal anomalies: orphan citations, self-citations,
citation rings, and papers citing the future.

Each run produces a structured report and can be persisted to a local
SQLite history for later comparison.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./corpus-audit.yaml or ~/.config/corpus-audit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("corpus-audit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "corpus-audit"))
		}
	}

	viper.SetEnvPrefix("CORPUS_AUDIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig builds the run configuration: ship defaults, then overlay
// anything the config file sets.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if viper.IsSet("pagerank.damping") {
		cfg.PageRank.Damping = viper.GetFloat64("pagerank.damping")
	}
	if viper.IsSet("pagerank.tolerance") {
		cfg.PageRank.Tolerance = viper.GetFloat64("pagerank.tolerance")
	}
	if viper.IsSet("pagerank.max_iterations") {
		cfg.PageRank.MaxIterations = viper.GetInt("pagerank.max_iterations")
	}
	if viper.IsSet("max_cycle_length") {
		cfg.MaxCycleLength = viper.GetInt("max_cycle_length")
	}
	if viper.IsSet("fuzzy_match_threshold") {
		cfg.FuzzyMatchThreshold = viper.GetFloat64("fuzzy_match_threshold")
	}
	if viper.IsSet("typo_corrections") {
		cfg.TypoCorrections = viper.GetStringMapString("typo_corrections")
	}
	if viper.IsSet("venue_normalizations") {
		cfg.VenueNormalizations = viper.GetStringMapString("venue_normalizations")
	}
	if viper.IsSet("method_vocabulary") {
		cfg.MethodVocabulary = viper.GetStringSlice("method_vocabulary")
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
