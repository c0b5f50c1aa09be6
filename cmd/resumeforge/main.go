// Package main provides the resumeforge CLI, which tailors a resume to a job description.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	debugLog bool
	jsonLog  bool
)

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "Tailor a resume to a job description",
	Long: "resumeforge interprets a job description, scores your profile against it, recommends " +
		"missing skills, and renders a tailored resume as LaTeX or HTML.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is resumeforge.yaml in current directory)")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Verbose/debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json", false, "JSON format for logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
