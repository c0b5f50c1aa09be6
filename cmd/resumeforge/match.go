package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/ranking"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score the profile against a job analysis",
	RunE:  runMatch,
}

var (
	matchAnalysisFile string
	matchProfilePath  string
	matchDBURL        string
	matchOut          string
)

func init() {
	matchCmd.Flags().StringVarP(&matchAnalysisFile, "analysis", "a", "", "Path to JobAnalysis JSON (required)")
	matchCmd.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to profile JSON (default from config)")
	matchCmd.Flags().StringVar(&matchDBURL, "db-url", "", "Load the profile from PostgreSQL instead of a file")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Also write the MatchResult JSON to this path")

	_ = matchCmd.MarkFlagRequired("analysis")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()

	analysis, err := readAnalysis(matchAnalysisFile)
	if err != nil {
		return err
	}
	store, closeStore, err := e.profileStore(ctx, matchDBURL, matchProfilePath)
	if err != nil {
		return err
	}
	defer closeStore()

	p, err := store.Load(ctx)
	if err != nil {
		return err
	}

	result := ranking.ComputeMatch(p, analysis)
	observability.NewPrinter(cmd.OutOrStdout()).PrintMatch(&result)

	if matchOut != "" {
		if err := writeJSONFile(matchOut, result); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", matchOut)
	}
	return nil
}
