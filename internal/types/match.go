//nolint:revive // types is a standard Go package name pattern
package types

// MatchData holds the match signals and scores between a resume and a job
// posting. It is created fresh by the scorer at analysis time; only
// FinalScore and SummaryTailored are updated afterwards, exactly once, by
// the tailoring engine.
type MatchData struct {
	InitialScore float64 `json:"initial_score"` // 0-10, one decimal
	FinalScore   float64 `json:"final_score"`   // 0 until tailoring completes

	TitleMatch      bool     `json:"title_match"`
	ExperienceMatch bool     `json:"experience_match"`
	IndustryMatches []string `json:"industry_matches"`
	SkillMatches    []string `json:"skill_matches"`
	MissingSkills   []string `json:"missing_skills"`

	// SummaryTailored records whether the summary section was rewritten
	// during tailoring.
	SummaryTailored bool `json:"summary_tailored"`
}
