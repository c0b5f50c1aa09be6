package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/ingestion"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Ingest a job posting from a file or URL",
	Long:  "Ingest a job posting from a text, PDF or DOCX file or a URL, clean the content, and output cleaned text with metadata.",
	RunE:  runIngestJob,
}

var (
	ingestTextFile   string
	ingestURL        string
	ingestOutDir     string
	ingestUseBrowser bool
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to file containing the job posting (.txt, .md, .pdf, .docx)")
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestJobCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	ingestJobCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Fall back to a headless browser for JavaScript-rendered pages")

	_ = ingestJobCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, _ []string) error {
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	e, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()

	in := ingestion.New(e.log)
	in.MinLength = e.cfg.MinJDLength
	in.UseBrowser = ingestUseBrowser || e.cfg.UseBrowser

	var cleanedText string
	var metadata *ingestion.Metadata
	if ingestTextFile != "" {
		cleanedText, metadata, err = in.FromFile(ctx, ingestTextFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = in.FromURL(ctx, ingestURL)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := ingestion.WriteOutput(ingestOutDir, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully ingested job posting (%d chars)\n", metadata.Chars)
	fmt.Fprintf(out, "Cleaned text: %s\n", filepath.Join(ingestOutDir, ingestion.CleanedFileName))
	fmt.Fprintf(out, "Metadata: %s\n", filepath.Join(ingestOutDir, ingestion.MetadataFileName))
	return nil
}
