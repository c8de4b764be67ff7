// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobPosting outputs a human-readable summary of the job posting.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Title))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	if job.RequiredYearsOfExperience > 0 {
		sb.WriteString(fmt.Sprintf("Experience: %d+ years\n", job.RequiredYearsOfExperience))
	}

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
	}

	if len(job.Industries) > 0 {
		sb.WriteString(fmt.Sprintf("\nIndustries: %s\n", strings.Join(job.Industries, ", ")))
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the match signals and score for a scored
// resume/job pair.
func (p *Printer) PrintMatchReport(match *types.MatchData) {
	if match == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Initial score: %.1f / 10\n", match.InitialScore))
	if match.FinalScore > 0 {
		sb.WriteString(fmt.Sprintf("Final score:   %.1f / 10\n", match.FinalScore))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Title match:      %s\n", yesNo(match.TitleMatch)))
	sb.WriteString(fmt.Sprintf("Experience match: %s\n", yesNo(match.ExperienceMatch)))

	if len(match.SkillMatches) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatched skills (%d):\n", len(match.SkillMatches)))
		count := min(len(match.SkillMatches), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", match.SkillMatches[i]))
		}
		if len(match.SkillMatches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.SkillMatches)-maxItemsToShow))
		}
	}

	if len(match.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing skills (%d):\n", len(match.MissingSkills)))
		count := min(len(match.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", match.MissingSkills[i]))
		}
		if len(match.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.MissingSkills)-maxItemsToShow))
		}
	}

	if len(match.IndustryMatches) > 0 {
		sb.WriteString(fmt.Sprintf("\nIndustry overlap: %s\n", strings.Join(match.IndustryMatches, ", ")))
	}

	p.printBox("MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoredResume outputs the headline changes from a tailoring run.
func (p *Printer) PrintTailoredResume(resume *types.Resume, match *types.MatchData) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if match != nil && match.SummaryTailored {
		sb.WriteString("Summary: rewritten\n")
	} else {
		sb.WriteString("Summary: unchanged\n")
	}
	sb.WriteString(fmt.Sprintf("Skills:  %d listed\n", len(resume.Skills)))
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(resume.WorkExperiences)))

	if resume.Summary != "" {
		sb.WriteString("\n")
		summary := resume.Summary
		if len(summary) > 150 {
			summary = summary[:147] + "..."
		}
		for _, line := range wrapText(summary, boxWidth-6) {
			sb.WriteString(line + "\n")
		}
	}

	p.printBox("TAILORED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// wrapText breaks s into lines no wider than width, on word boundaries.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
