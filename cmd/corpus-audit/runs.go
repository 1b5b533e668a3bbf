package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-audit/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect the stored run history",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, newest first",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the stored report and check outcomes for one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsCmd.PersistentFlags().String("db", "corpus-audit.db", "history database path")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func openHistory(cmd *cobra.Command) (*store.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	return store.Open(dbPath)
}

func runRunsList(cmd *cobra.Command, args []string) error {
	s, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs stored.")
		return nil
	}

	fmt.Printf("%-5s  %-20s  %7s  %9s  %7s  %5s  %5s  %6s\n",
		"ID", "Created", "Papers", "Citations", "Orphans", "Self", "Rings", "Passed")
	for _, r := range runs {
		fmt.Printf("%-5d  %-20s  %7d  %9d  %7d  %5d  %5d  %6t\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.TotalPapers, r.TotalCitations, r.OrphanCitations,
			r.SelfCitations, r.CitationRings, r.AllChecksPassed)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	s, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	report, err := s.Report(ctx, runID)
	if err != nil {
		return err
	}
	checks, err := s.Checks(ctx, runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(os.Stderr, "Checks:")
	for _, name := range names {
		status := "pass"
		if !checks[name] {
			status = "FAIL"
		}
		fmt.Fprintf(os.Stderr, "  %-30s %s\n", name, status)
	}
	return nil
}
