package tailoring

import (
	"fmt"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// applyFallback is the deterministic tailoring strategy. It guarantees a
// valid, non-broken resume when the model is unavailable or unusable: a
// templated summary, a clean skill merge, and otherwise the original
// content passed through untouched.
func applyFallback(clone *types.Resume, job *types.JobPosting, sections types.SectionSelection, selectedSkills []string) {
	if sections.Summary {
		clone.Summary = fallbackSummary(clone, job)
	}

	if sections.Skills {
		clone.Skills = MergeSkills(clone.Skills, selectedSkills)
	}

	// Experience, certifications, projects and soft skills pass through
	// unchanged: the fallback promises validity, not improvement.
}

// fallbackSummary builds the templated summary from the candidate's title,
// experience and industries plus the job's skills and company.
func fallbackSummary(resume *types.Resume, job *types.JobPosting) string {
	title := resume.JobTitle
	if title == "" {
		title = "Professional"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s with %d years of experience", title, resume.YearsOfExperience))
	if len(resume.Industries) > 0 {
		sb.WriteString(" in " + joinWithAnd(resume.Industries))
	}
	sb.WriteString(".")

	if len(job.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf(" Skilled in %s", joinWithAnd(job.RequiredSkills)))
		if job.Company != "" {
			sb.WriteString(fmt.Sprintf(", ready to deliver results for %s", job.Company))
		}
		sb.WriteString(".")
	} else if job.Company != "" {
		sb.WriteString(fmt.Sprintf(" Ready to deliver results for %s.", job.Company))
	}

	return sb.String()
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
