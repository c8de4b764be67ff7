package parsing

import (
	"regexp"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// Text-mining regexes. These are best-effort extractors over unstructured
// resume text with no guaranteed grammar; each one is pure and returns nil
// when nothing matches.
var (
	certificationRe = regexp.MustCompile(`([A-Za-z\s]+):\s*([A-Za-z]+\s+\d{4})\s*-\s*([A-Za-z]+\s+\d{4})`)
	projectsRe      = regexp.MustCompile(`PROJECTS\s*\n\n([\s\S]*?)(?:\n\n|$)`)
	projectTitleRe  = regexp.MustCompile(`(?m)^(.+?)(?:\s+([A-Za-z]+\s+\d{4}))?$`)
	projectBulletRe = regexp.MustCompile(`•\s+(.+)`)
	projectRoleRe   = regexp.MustCompile(`(?m)^Role:\s*(.+)$`)
)

// ExtractCertifications scans raw resume text for "<Name>: <Month Year> -
// <Month Year>" entries. Returns nil when the text contains none.
func ExtractCertifications(rawText string) []types.Certification {
	if rawText == "" {
		return nil
	}

	matches := certificationRe.FindAllStringSubmatch(rawText, -1)
	if len(matches) == 0 {
		return nil
	}

	certs := make([]types.Certification, 0, len(matches))
	for _, m := range matches {
		// The name group greedily spans newlines, pulling in whatever line
		// precedes the entry (usually a section header). Only the last line
		// is the certification name.
		name := m[1]
		if idx := strings.LastIndex(name, "\n"); idx >= 0 {
			name = name[idx+1:]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		certs = append(certs, types.Certification{
			Name:      name,
			DateRange: m[2] + " - " + m[3],
		})
	}

	if len(certs) == 0 {
		return nil
	}
	return certs
}

// ExtractProjects locates a PROJECTS section in raw resume text and mines
// titles, optional trailing dates, an optional "Role:" line and bullet
// descriptions from it. Returns nil when no section is found.
func ExtractProjects(rawText string) []types.Project {
	if rawText == "" {
		return nil
	}

	section := projectsRe.FindStringSubmatch(rawText)
	if section == nil {
		return nil
	}

	var projects []types.Project
	for _, block := range strings.Split(section[1], "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if p, ok := parseProjectBlock(block); ok {
			projects = append(projects, p)
		}
	}

	return projects
}

// parseProjectBlock extracts a single project from one blank-line-delimited
// block. The first line carries the title and an optional trailing date.
func parseProjectBlock(block string) (types.Project, bool) {
	title := projectTitleRe.FindStringSubmatch(block)
	if title == nil || strings.TrimSpace(title[1]) == "" {
		return types.Project{}, false
	}

	project := types.Project{
		Title: strings.TrimSpace(title[1]),
		Date:  title[2],
	}

	if role := projectRoleRe.FindStringSubmatch(block); role != nil {
		project.Role = strings.TrimSpace(role[1])
	}

	if bullets := projectBulletRe.FindAllStringSubmatch(block, -1); bullets != nil {
		lines := make([]string, 0, len(bullets))
		for _, b := range bullets {
			lines = append(lines, strings.TrimSpace(b[1]))
		}
		project.Description = strings.Join(lines, "\n")
	}

	return project, true
}
