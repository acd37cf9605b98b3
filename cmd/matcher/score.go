package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/skills"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Score a resume text file against a job description text file using a skill vocabulary, printing the full result as JSON.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreVocabFile  string
	scoreThreshold  float64
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description text file (required)")
	scoreCmd.Flags().StringVarP(&scoreVocabFile, "vocabulary", "v", "", "Path to skill vocabulary JSON file (required)")
	scoreCmd.Flags().Float64Var(&scoreThreshold, "fuzzy-threshold", 0, "Minimum fuzzy match similarity in (0,1]")

	scoreCmd.MarkFlagRequired("resume")
	scoreCmd.MarkFlagRequired("job")
	scoreCmd.MarkFlagRequired("vocabulary")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	resumeText, err := os.ReadFile(scoreResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(scoreJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	vocabulary, err := skills.LoadVocabulary(scoreVocabFile)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	var opts []skills.Option
	if scoreThreshold > 0 {
		opts = append(opts, skills.WithFuzzyThreshold(scoreThreshold))
	}

	engine := matching.NewEngine(opts...)
	result, err := engine.Match(string(resumeText), string(jobText), vocabulary)
	if err != nil {
		return fmt.Errorf("failed to score match: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
