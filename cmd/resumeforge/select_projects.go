package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/selection"
)

var selectProjectsCmd = &cobra.Command{
	Use:   "select-projects",
	Short: "Pick the profile projects most relevant to a job analysis",
	RunE:  runSelectProjects,
}

var (
	selectAnalysisFile string
	selectProfilePath  string
	selectDBURL        string
	selectMax          int
)

func init() {
	selectProjectsCmd.Flags().StringVarP(&selectAnalysisFile, "analysis", "a", "", "Path to JobAnalysis JSON (required)")
	selectProjectsCmd.Flags().StringVarP(&selectProfilePath, "profile", "p", "", "Path to profile JSON (default from config)")
	selectProjectsCmd.Flags().StringVar(&selectDBURL, "db-url", "", "Load the profile from PostgreSQL instead of a file")
	selectProjectsCmd.Flags().IntVar(&selectMax, "max", 0, "Maximum projects to select (default from config)")

	_ = selectProjectsCmd.MarkFlagRequired("analysis")

	rootCmd.AddCommand(selectProjectsCmd)
}

func runSelectProjects(cmd *cobra.Command, _ []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()

	analysis, err := readAnalysis(selectAnalysisFile)
	if err != nil {
		return err
	}
	store, closeStore, err := e.profileStore(ctx, selectDBURL, selectProfilePath)
	if err != nil {
		return err
	}
	defer closeStore()

	p, err := store.Load(ctx)
	if err != nil {
		return err
	}

	limit := e.cfg.MaxProjects
	if cmd.Flags().Changed("max") {
		limit = selectMax
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintProjects(selection.SelectBestProjects(p, analysis, limit))
	return nil
}
