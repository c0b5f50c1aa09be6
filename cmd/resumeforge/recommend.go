package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/profile"
	"github.com/jonathan/resumeforge/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List missing skills and AI-suggested additions",
	Long: "Compare the profile with a job analysis, list missing required and nice-to-have skills, " +
		"and ask the LLM for supplementary skills. With --interactive, chosen skills are added to the profile.",
	RunE: runRecommend,
}

var (
	recommendAnalysisFile string
	recommendProfilePath  string
	recommendDBURL        string
	recommendInteractive  bool
	recommendNoAI         bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendAnalysisFile, "analysis", "a", "", "Path to JobAnalysis JSON (required)")
	recommendCmd.Flags().StringVarP(&recommendProfilePath, "profile", "p", "", "Path to profile JSON (default from config)")
	recommendCmd.Flags().StringVar(&recommendDBURL, "db-url", "", "Use the profile stored in PostgreSQL instead of a file")
	recommendCmd.Flags().BoolVarP(&recommendInteractive, "interactive", "i", false, "Pick skills to add to the profile")
	recommendCmd.Flags().BoolVar(&recommendNoAI, "no-ai", false, "Skip AI skill suggestions")

	_ = recommendCmd.MarkFlagRequired("analysis")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()

	analysis, err := readAnalysis(recommendAnalysisFile)
	if err != nil {
		return err
	}
	store, closeStore, err := e.profileStore(ctx, recommendDBURL, recommendProfilePath)
	if err != nil {
		return err
	}
	defer closeStore()

	p, err := store.Load(ctx)
	if err != nil {
		return err
	}

	var suggester recommend.Suggester
	if !recommendNoAI {
		client, err := e.llmClient(ctx)
		if err != nil {
			e.log.Warn("AI suggestions disabled", zap.Error(err))
		} else {
			defer func() { _ = client.Close() }()
			suggester = recommend.NewLLMSuggester(client)
		}
	}

	generator := recommend.NewGenerator(suggester,
		recommend.WithTimeout(e.cfg.SuggestionTimeout),
		recommend.WithLogger(e.log),
	)
	recs := generator.Recommend(ctx, p, analysis)
	observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(&recs)

	if !recommendInteractive {
		return nil
	}
	candidates := append(recs.AllMissing(), recs.AISuggestions...)
	if len(candidates) == 0 {
		return nil
	}

	chosen, err := chooseSkills(candidates)
	if err != nil {
		return err
	}
	added := profile.AddSkills(p, chosen)
	if added == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No new skills added")
		return nil
	}
	if err := store.Save(ctx, p); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d skills to profile\n", added)
	return nil
}
