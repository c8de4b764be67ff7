// Package matching computes match signals and 0-10 fit scores between a
// canonical resume and a job posting. Everything here is pure and
// deterministic; the weights are fixed design constants, not tunable at
// runtime.
package matching

import (
	"math"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// Score component weights. Skills dominate the score; a matching title or
// sufficient experience each contribute a flat boost, and industry overlap
// is a small tiebreaker.
const (
	maxSkillScore    = 5.0
	experienceBoost  = 2.0
	titleBoost       = 2.0
	maxIndustryScore = 1.0
	maxScore         = 10.0

	// Boost applied per tailored section when finalizing the score after a
	// tailoring pass. Intentionally absent from the initial formula: the
	// final score rewards the act of tailoring itself.
	tailoredSectionBoost = 1.0
)

// Score computes fresh match data for a resume/job pair. FinalScore is
// left at 0 and SummaryTailored at false; both are populated by the
// tailoring engine.
func Score(resume *types.Resume, job *types.JobPosting) *types.MatchData {
	md := &types.MatchData{
		TitleMatch:      titlesMatch(resume.JobTitle, job.Title),
		ExperienceMatch: resume.YearsOfExperience >= job.RequiredYearsOfExperience,
		IndustryMatches: intersectExact(resume.Industries, job.Industries),
	}
	md.SkillMatches, md.MissingSkills = matchSkills(resume.Skills, job.RequiredSkills)
	md.InitialScore = initialScore(md, job)
	return md
}

// titlesMatch applies a mutual-substring heuristic: either title
// containing the other (case-insensitively) counts as a match.
func titlesMatch(resumeTitle, jobTitle string) bool {
	a := strings.ToLower(strings.TrimSpace(resumeTitle))
	b := strings.ToLower(strings.TrimSpace(jobTitle))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// intersectExact returns the entries of left whose lowercase form equals
// some entry of right, preserving left's casing and order.
func intersectExact(left, right []string) []string {
	rightSet := make(map[string]bool, len(right))
	for _, r := range right {
		rightSet[strings.ToLower(r)] = true
	}

	matches := make([]string, 0, len(left))
	for _, l := range left {
		if rightSet[strings.ToLower(l)] {
			matches = append(matches, l)
		}
	}
	return matches
}

// matchSkills computes the case-insensitive intersection and difference of
// resume skills vs. required skills. Matches keep the resume's casing;
// missing skills keep the job's casing.
func matchSkills(resumeSkills, requiredSkills []string) (matches, missing []string) {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = true
	}

	matches = intersectExact(resumeSkills, requiredSkills)
	missing = make([]string, 0, len(requiredSkills))
	for _, req := range requiredSkills {
		if !resumeSet[strings.ToLower(req)] {
			missing = append(missing, req)
		}
	}
	return matches, missing
}

// initialScore combines the component scores. A job with no required
// skills grants the full skill component; a job with no industries grants
// the full industry component.
func initialScore(md *types.MatchData, job *types.JobPosting) float64 {
	score := skillComponent(len(md.SkillMatches), len(job.RequiredSkills)) +
		industryComponent(len(md.IndustryMatches), len(job.Industries))
	if md.ExperienceMatch {
		score += experienceBoost
	}
	if md.TitleMatch {
		score += titleBoost
	}
	return roundScore(score)
}

// FinalizeScore recomputes the score after a tailoring pass. It reuses the
// base match data's skill-match count, counts every selected skill as
// newly matched, and adds a flat boost for each of the summary and
// experience sections being tailored. This is deliberately not a smooth
// continuation of the initial formula.
func FinalizeScore(base *types.MatchData, job *types.JobPosting, sections types.SectionSelection, selectedSkills []string) float64 {
	score := skillComponent(len(base.SkillMatches)+len(selectedSkills), len(job.RequiredSkills)) +
		industryComponent(len(base.IndustryMatches), len(job.Industries))
	if base.ExperienceMatch {
		score += experienceBoost
	}
	if base.TitleMatch {
		score += titleBoost
	}
	if sections.Summary {
		score += tailoredSectionBoost
	}
	if sections.Experience {
		score += tailoredSectionBoost
	}
	return roundScore(score)
}

func skillComponent(matched, required int) float64 {
	if required == 0 {
		return maxSkillScore
	}
	return float64(matched) / float64(required) * maxSkillScore
}

func industryComponent(matched, total int) float64 {
	if total == 0 {
		return maxIndustryScore
	}
	return float64(matched) / float64(total) * maxIndustryScore
}

// roundScore caps at the maximum and rounds to one decimal place.
func roundScore(score float64) float64 {
	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return math.Round(score*10) / 10
}
