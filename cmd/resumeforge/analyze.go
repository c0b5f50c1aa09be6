package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/parsing"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Interpret a job description into structured JobAnalysis JSON",
	Long:  "Interpret a job description file or URL with the configured LLM and write the resulting JobAnalysis as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeOut        string
	analyzeUseBrowser bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Fall back to a headless browser for JavaScript-rendered pages")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()

	text, err := e.jobText(ctx, analyzeJobFile, analyzeJobURL, analyzeUseBrowser)
	if err != nil {
		return err
	}

	client, err := e.llmClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	analysis, err := parsing.NewInterpreter(client, e.log).Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to analyze job description: %w", err)
	}

	if analyzeOut == "" {
		return writeJSON(cmd.OutOrStdout(), analysis)
	}
	if err := writeJSONFile(analyzeOut, analysis); err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(analysis)
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", analyzeOut)
	return nil
}
