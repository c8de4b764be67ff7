package tailoring

import (
	"fmt"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// buildPrompt constructs the tailoring prompt: the job posting, the
// resume's current sections, and explicit instructions about which
// sections the model may rewrite. The model is asked for a single JSON
// object matching the tailored-resume schema.
func buildPrompt(resume *types.Resume, job *types.JobPosting, sections types.SectionSelection, selectedSkills []string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert resume writer. Rewrite the selected sections of the candidate's resume so it speaks directly to the job posting below. ")
	sb.WriteString("Keep every fact truthful: never invent employers, dates, or credentials.\n\n")

	sb.WriteString("Job posting:\n")
	sb.WriteString(fmt.Sprintf("  Title: %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("  Company: %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("  Location: %s\n", job.Location))
	}
	if job.RequiredYearsOfExperience > 0 {
		sb.WriteString(fmt.Sprintf("  Required experience: %d years\n", job.RequiredYearsOfExperience))
	}
	if len(job.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("  Required skills: %s\n", strings.Join(job.RequiredSkills, ", ")))
	}
	if len(job.Industries) > 0 {
		sb.WriteString(fmt.Sprintf("  Industries: %s\n", strings.Join(job.Industries, ", ")))
	}
	if job.Description != "" {
		sb.WriteString("  Description:\n")
		sb.WriteString(indent(job.Description, "    "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Candidate resume:\n")
	sb.WriteString(fmt.Sprintf("  Current title: %s\n", resume.JobTitle))
	sb.WriteString(fmt.Sprintf("  Years of experience: %d\n", resume.YearsOfExperience))
	sb.WriteString(fmt.Sprintf("  Summary: %s\n", resume.Summary))
	sb.WriteString(fmt.Sprintf("  Skills: %s\n", strings.Join(resume.Skills, ", ")))
	for _, exp := range resume.WorkExperiences {
		sb.WriteString(fmt.Sprintf("  - %s at %s (%s - %s)\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate))
		for _, r := range exp.Responsibilities {
			sb.WriteString(fmt.Sprintf("      * %s\n", r))
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Sections to rewrite: ")
	sb.WriteString(strings.Join(selectedSectionNames(sections), ", "))
	sb.WriteString("\n")
	if sections.EditMode == types.EditModeFull {
		sb.WriteString("Edit mode: full rewrite of the selected sections is allowed.\n")
	} else {
		sb.WriteString("Edit mode: quick pass; adjust wording and emphasis only.\n")
	}
	if len(selectedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Additionally weave in these skills the candidate wants highlighted: %s\n", strings.Join(selectedSkills, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString("Return ONLY a single JSON object, no markdown and no explanation, with this shape:\n")
	sb.WriteString(`{
  "summary": "rewritten professional summary",
  "skills": ["skill", ...],
  "work_experiences": [
    {
      "title": "...", "company": "...", "location": "...",
      "start_date": "...", "end_date": "...",
      "responsibilities": ["...", ...]
    }
  ]
}` + "\n")
	sb.WriteString("Include every listed key even for sections you were not asked to rewrite; copy those through unchanged.\n")

	return sb.String()
}

func selectedSectionNames(sections types.SectionSelection) []string {
	names := make([]string, 0, 3)
	if sections.Summary {
		names = append(names, "summary")
	}
	if sections.Skills {
		names = append(names, "skills")
	}
	if sections.Experience {
		names = append(names, "experience")
	}
	if len(names) == 0 {
		names = append(names, "none")
	}
	return names
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
