package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/selection"
)

var optimizeExperienceCmd = &cobra.Command{
	Use:   "optimize-experience",
	Short: "Reorder and trim experience bullets by keyword relevance",
	RunE:  runOptimizeExperience,
}

var (
	optimizeAnalysisFile string
	optimizeProfilePath  string
	optimizeDBURL        string
	optimizeMaxBullets   int
)

func init() {
	optimizeExperienceCmd.Flags().StringVarP(&optimizeAnalysisFile, "analysis", "a", "", "Path to JobAnalysis JSON (required)")
	optimizeExperienceCmd.Flags().StringVarP(&optimizeProfilePath, "profile", "p", "", "Path to profile JSON (default from config)")
	optimizeExperienceCmd.Flags().StringVar(&optimizeDBURL, "db-url", "", "Load the profile from PostgreSQL instead of a file")
	optimizeExperienceCmd.Flags().IntVar(&optimizeMaxBullets, "max-bullets", 0, "Bullets kept per entry (default from config)")

	_ = optimizeExperienceCmd.MarkFlagRequired("analysis")

	rootCmd.AddCommand(optimizeExperienceCmd)
}

func runOptimizeExperience(cmd *cobra.Command, _ []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()

	analysis, err := readAnalysis(optimizeAnalysisFile)
	if err != nil {
		return err
	}
	store, closeStore, err := e.profileStore(ctx, optimizeDBURL, optimizeProfilePath)
	if err != nil {
		return err
	}
	defer closeStore()

	p, err := store.Load(ctx)
	if err != nil {
		return err
	}

	limit := e.cfg.MaxBullets
	if cmd.Flags().Changed("max-bullets") {
		limit = optimizeMaxBullets
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintExperience(selection.OptimizeExperience(p.Experience, analysis.Keywords, limit))
	return nil
}
