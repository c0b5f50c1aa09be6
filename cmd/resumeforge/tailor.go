package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/parsing"
	"github.com/jonathan/resumeforge/internal/pipeline"
	"github.com/jonathan/resumeforge/internal/recommend"
	"github.com/jonathan/resumeforge/internal/rendering"
	"github.com/jonathan/resumeforge/internal/summary"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Analyze a job description and render a tailored resume",
	Long: "Run the full flow: interpret the job description, score the profile, recommend skills, " +
		"select projects and bullets, and render the tailored resume to a local path or s3://bucket/key.",
	RunE: runTailor,
}

var (
	tailorJobFile     string
	tailorJobURL      string
	tailorUseBrowser  bool
	tailorFormat      string
	tailorTemplate    string
	tailorOut         string
	tailorProfilePath string
	tailorDBURL       string
	tailorInteractive bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job", "j", "", "Path to job description file")
	tailorCmd.Flags().StringVarP(&tailorJobURL, "job-url", "u", "", "URL to fetch the job description from")
	tailorCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Fall back to a headless browser for JavaScript-rendered pages")
	tailorCmd.Flags().StringVarP(&tailorFormat, "format", "f", "", "Output format: latex or html (default from config)")
	tailorCmd.Flags().StringVarP(&tailorTemplate, "template", "t", "", "Custom template path")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Output file, directory, or s3://bucket/key")
	tailorCmd.Flags().StringVarP(&tailorProfilePath, "profile", "p", "", "Path to profile JSON (default from config)")
	tailorCmd.Flags().StringVar(&tailorDBURL, "db-url", "", "Use the profile stored in PostgreSQL instead of a file")
	tailorCmd.Flags().BoolVarP(&tailorInteractive, "interactive", "i", false, "Pick recommended skills to add before rendering")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()
	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	format := tailorFormat
	if format == "" {
		format = e.cfg.Format
	}
	templatePath := tailorTemplate
	if templatePath == "" {
		templatePath = e.cfg.Template
	}
	renderer, err := rendering.New(format, templatePath)
	if err != nil {
		return err
	}

	text, err := e.jobText(ctx, tailorJobFile, tailorJobURL, tailorUseBrowser)
	if err != nil {
		return err
	}

	client, err := e.llmClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	store, closeStore, err := e.profileStore(ctx, tailorDBURL, tailorProfilePath)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := pipeline.Options{
		MaxProjects: e.cfg.MaxProjects,
		MaxBullets:  e.cfg.MaxBullets,
		MaxSkills:   e.cfg.MaxSkills,
		OnProgress: func(ev pipeline.ProgressEvent) {
			e.log.Info(ev.Message, zap.String("step", ev.Step), zap.String("run_id", ev.RunID))
		},
	}
	generator := recommend.NewGenerator(recommend.NewLLMSuggester(client),
		recommend.WithTimeout(e.cfg.SuggestionTimeout),
		recommend.WithLogger(e.log),
	)
	session := pipeline.NewSession(
		parsing.NewInterpreter(client, e.log),
		generator,
		summary.NewWriter(client, e.log),
		store,
		opts,
		e.log,
	)

	outcome, err := session.Analyze(ctx, text)
	if err != nil {
		return err
	}
	printer.PrintAnalysis(&outcome.Analysis)
	printer.PrintMatch(&outcome.Match)
	printer.PrintRecommendations(&outcome.Recommendations)

	if tailorInteractive {
		candidates := append(outcome.Recommendations.AllMissing(), outcome.Recommendations.AISuggestions...)
		if len(candidates) > 0 {
			chosen, err := chooseSkills(candidates)
			if err != nil {
				return err
			}
			added, err := session.ApplySkills(ctx, chosen)
			if err != nil {
				return err
			}
			if added > 0 {
				outcome, err = session.Reanalyze(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Added %d skills to profile\n", added)
				printer.PrintMatch(&outcome.Match)
			}
		}
	}

	resume, err := session.Tailor()
	if err != nil {
		return err
	}
	printer.PrintProjects(resume.Projects)

	content, err := renderer.Render(resume)
	if err != nil {
		return err
	}

	sink, name, err := e.destination(ctx, tailorOut)
	if err != nil {
		return err
	}
	if name == "" {
		name = rendering.FileName(resume, renderer.Extension())
	}
	location, err := sink.Put(ctx, name, []byte(content))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Resume written: %s\n", location)
	return nil
}
