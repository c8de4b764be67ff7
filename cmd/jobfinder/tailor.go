package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/logger"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/matching"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/observability"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/tailoring"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

var (
	tailorResumeFile string
	tailorJobFile    string
	tailorOutFile    string
	tailorSummary    bool
	tailorSkills     bool
	tailorExperience bool
	tailorEditMode   string
	tailorAddSkills  []string
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a job posting",
	Long:  "Rewrite the selected resume sections for a job posting using the text-generation model, falling back to a deterministic strategy when the model is unavailable.",
	RunE:  runTailor,
}

func init() {
	tailorCmd.Flags().StringVar(&tailorResumeFile, "resume", "", "Path to parsed resume JSON (required)")
	tailorCmd.Flags().StringVar(&tailorJobFile, "job", "", "Path to job posting JSON (required)")
	tailorCmd.Flags().StringVarP(&tailorOutFile, "out", "o", "", "Path to write the tailored resume JSON (default: stdout)")
	tailorCmd.Flags().BoolVar(&tailorSummary, "summary", true, "Tailor the summary section")
	tailorCmd.Flags().BoolVar(&tailorSkills, "skills", true, "Tailor the skills section")
	tailorCmd.Flags().BoolVar(&tailorExperience, "experience", false, "Tailor the work experience section")
	tailorCmd.Flags().StringVar(&tailorEditMode, "edit-mode", "quick", "Edit mode: quick or full")
	tailorCmd.Flags().StringSliceVar(&tailorAddSkills, "add-skill", nil, "Missing skill to add (repeatable)")
	_ = tailorCmd.MarkFlagRequired("resume")
	_ = tailorCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if tailorEditMode != string(types.EditModeQuick) && tailorEditMode != string(types.EditModeFull) {
		return fmt.Errorf("invalid edit mode %q: must be quick or full", tailorEditMode)
	}
	if !tailorSummary && !tailorSkills && !tailorExperience {
		return fmt.Errorf("at least one section must be selected")
	}

	resume, job, err := loadPairFiles(tailorResumeFile, tailorJobFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	engine := tailoring.NewEngine(client, log)

	sections := types.SectionSelection{
		Summary:    tailorSummary,
		Skills:     tailorSkills,
		Experience: tailorExperience,
		EditMode:   types.EditMode(tailorEditMode),
	}

	base := matching.Score(resume, job)
	result, err := engine.Tailor(ctx, resume, job, sections, tailorAddSkills, base)
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stderr)
	printer.PrintMatchReport(result.MatchData)
	printer.PrintTailoredResume(result.Resume, result.MatchData)

	out := os.Stdout
	if tailorOutFile != "" {
		f, err := os.Create(tailorOutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Resume)
}
