package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/extraction"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/matching"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/observability"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/parsing"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

var (
	analyzeResumeFile string
	analyzeJobFile    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a parsed resume against a job posting",
	Long:  "Normalize a parsed resume JSON file (as produced by ingest) and score it against a job posting JSON file.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumeFile, "resume", "", "Path to parsed resume JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to job posting JSON (required)")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

// loadPairFiles reads and decodes the resume and job posting inputs.
func loadPairFiles(resumePath, jobPath string) (*types.Resume, *types.JobPosting, error) {
	rawData, err := os.ReadFile(resumePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	var raw types.RawParsedResume
	if err := json.Unmarshal(rawData, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	jobData, err := os.ReadFile(jobPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read job file: %w", err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(jobData, &job); err != nil {
		return nil, nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	job.Description = extraction.DescriptionText(job.Description)

	return parsing.Normalize(&raw), &job, nil
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	resume, job, err := loadPairFiles(analyzeResumeFile, analyzeJobFile)
	if err != nil {
		return err
	}

	match := matching.Score(resume, job)

	printer := observability.NewPrinter(os.Stderr)
	printer.PrintJobPosting(job)
	printer.PrintMatchReport(match)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(match)
}
