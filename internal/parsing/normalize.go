// Package parsing converts loosely-structured parsed-resume payloads into
// the canonical Resume record. Every function here is pure and total:
// arbitrarily malformed input normalizes to a valid (if sparse) resume,
// never an error.
package parsing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// industryKeywords maps substrings sniffed from company names and summaries
// to canonical industry labels. Matching is case-insensitive.
var industryKeywords = []struct {
	keyword  string
	industry string
}{
	{"tech", "Technology"},
	{"college", "Education"},
	{"education", "Education"},
	{"health", "Healthcare"},
	{"healthcare", "Healthcare"},
}

// Normalize converts a raw parsed-resume payload into a canonical Resume.
// Missing fields default to empty values; optional sections that end up
// empty are left nil so downstream renderers can branch on presence.
func Normalize(raw *types.RawParsedResume) *types.Resume {
	return normalizeAt(raw, time.Now())
}

// normalizeAt is Normalize with an injectable clock for the
// years-of-experience computation.
func normalizeAt(raw *types.RawParsedResume, now time.Time) *types.Resume {
	if raw == nil {
		raw = &types.RawParsedResume{}
	}

	resume := &types.Resume{
		WorkExperiences: mapExperiences(raw.Experience),
		Education:       mapEducation(raw.Education),
	}

	if p := raw.Personal; p != nil {
		resume.Name = p.Name.String()
		resume.JobTitle = p.Title.String()
		resume.Summary = p.Summary.String()
		resume.ContactInfo = types.ContactInfo{
			Phone:    p.Phone.String(),
			Email:    p.Email.String(),
			LinkedIn: p.LinkedIn.String(),
		}
	}

	resume.YearsOfExperience = yearsOfExperience(raw.Experience, now)
	resume.Industries = inferIndustries(raw.Experience, resume.Summary)

	skills, additional, soft := PartitionSkills(raw.Skills)
	resume.Skills = skills
	resume.AdditionalSkills = additional
	resume.SoftSkills = soft

	rawText := raw.RawText.String()
	resume.Certifications = ExtractCertifications(rawText)
	resume.Projects = ExtractProjects(rawText)

	return resume
}

// mapExperiences maps raw experience entries 1:1 onto work experiences.
// A missing end date means the role is current and becomes "Present".
func mapExperiences(entries []types.RawExperience) []types.WorkExperience {
	out := make([]types.WorkExperience, 0, len(entries))
	for _, e := range entries {
		endDate := e.EndDate.String()
		if endDate == "" {
			endDate = "Present"
		}
		responsibilities := []string(e.Achievements)
		if responsibilities == nil {
			responsibilities = []string{}
		}
		out = append(out, types.WorkExperience{
			Title:            e.Title.String(),
			Company:          e.Company.String(),
			Location:         e.Location.String(),
			StartDate:        e.StartDate.String(),
			EndDate:          endDate,
			Responsibilities: responsibilities,
		})
	}
	return out
}

func mapEducation(entries []types.RawEducation) []types.Education {
	out := make([]types.Education, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.Education{
			Institution: e.Institution.String(),
			Degree:      e.Degree.String(),
			Field:       e.Field.String(),
			GPA:         e.GPA.String(),
			StartDate:   e.StartDate.String(),
			EndDate:     e.EndDate.String(),
		})
	}
	return out
}

// yearsOfExperience sums the duration of every experience entry and rounds
// to whole years. Entries without a parseable start date contribute
// nothing; entries without an end date (or ending "present" in any casing)
// run until now. Overlapping ranges are intentionally not deduplicated:
// two concurrent part-time roles count twice. The double counting matches
// the persisted records produced by earlier versions of this product, so
// changing it would silently shift every stored score.
func yearsOfExperience(entries []types.RawExperience, now time.Time) int {
	totalMonths := 0
	for _, e := range entries {
		start, ok := parseYearMonth(e.StartDate.String())
		if !ok {
			continue
		}

		end := now
		endRaw := strings.TrimSpace(e.EndDate.String())
		if endRaw != "" && !strings.EqualFold(endRaw, "present") {
			if parsed, ok := parseYearMonth(endRaw); ok {
				end = parsed
			}
		}

		months := monthsBetween(start, end)
		if months > 0 {
			totalMonths += months
		}
	}

	years := int(math.Round(float64(totalMonths) / 12.0))
	if years < 0 {
		return 0
	}
	return years
}

// parseYearMonth parses dates in "YYYY" or "YYYY-MM" form. A bare year is
// treated as January of that year.
func parseYearMonth(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	parts := strings.SplitN(s, "-", 2)
	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return time.Time{}, false
	}

	month := 1
	if len(parts) == 2 {
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 1 || m > 12 {
			return time.Time{}, false
		}
		month = m
	}

	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// inferIndustries collects industries from explicit job_type/industry
// fields, then layers in keyword sniffing over company names and the
// candidate summary. The result is de-duplicated with insertion order
// preserved.
func inferIndustries(entries []types.RawExperience, summary string) []string {
	seen := make(map[string]bool)
	industries := make([]string, 0, 4)

	add := func(industry string) {
		industry = strings.TrimSpace(industry)
		if industry == "" {
			return
		}
		key := strings.ToLower(industry)
		if seen[key] {
			return
		}
		seen[key] = true
		industries = append(industries, industry)
	}

	var companies strings.Builder
	for _, e := range entries {
		add(e.JobType.String())
		add(e.Industry.String())
		companies.WriteString(e.Company.String())
		companies.WriteString(" ")
	}

	haystack := strings.ToLower(companies.String() + " " + summary)
	for _, kw := range industryKeywords {
		if strings.Contains(haystack, kw.keyword) {
			add(kw.industry)
		}
	}

	return industries
}
