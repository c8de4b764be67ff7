package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

func TestScore_SkillCaseInsensitiveWithCasingPreserved(t *testing.T) {
	resume := &types.Resume{Skills: []string{"JavaScript", "React"}}
	job := &types.JobPosting{RequiredSkills: []string{"javascript", "Redux"}}

	md := Score(resume, job)

	assert.Equal(t, []string{"JavaScript"}, md.SkillMatches)
	assert.Equal(t, []string{"Redux"}, md.MissingSkills)
}

func TestScore_ExperienceBelowRequirement(t *testing.T) {
	resume := &types.Resume{YearsOfExperience: 4}
	job := &types.JobPosting{RequiredYearsOfExperience: 5}

	md := Score(resume, job)

	assert.False(t, md.ExperienceMatch)
	// No skills required (5) + no industries (1) + no title (0) + no exp (0)
	assert.InDelta(t, 6.0, md.InitialScore, 0.001)
}

func TestScore_ZeroRequiredSkillsDefaultsToFullComponent(t *testing.T) {
	resume := &types.Resume{Skills: []string{"Go"}}
	job := &types.JobPosting{RequiredSkills: []string{}}

	md := Score(resume, job)

	// skill 5 + industry 1; nothing else matches
	assert.InDelta(t, 6.0, md.InitialScore, 0.001)
	assert.Empty(t, md.SkillMatches)
	assert.Empty(t, md.MissingSkills)
}

func TestScore_ZeroIndustriesDefaultsToFullComponent(t *testing.T) {
	resume := &types.Resume{Industries: []string{"Technology"}}
	job := &types.JobPosting{Industries: nil, RequiredSkills: []string{"Go"}}

	md := Score(resume, job)

	// skill 0 + industry 1
	assert.InDelta(t, 1.0, md.InitialScore, 0.001)
}

func TestScore_CappedAtTen(t *testing.T) {
	resume := &types.Resume{
		JobTitle:          "Senior Software Engineer",
		YearsOfExperience: 10,
		Industries:        []string{"Technology"},
		Skills:            []string{"Go", "SQL"},
	}
	job := &types.JobPosting{
		Title:                     "Software Engineer",
		RequiredYearsOfExperience: 5,
		Industries:                []string{"technology"},
		RequiredSkills:            []string{"go", "sql"},
	}

	md := Score(resume, job)

	assert.True(t, md.TitleMatch)
	assert.True(t, md.ExperienceMatch)
	assert.Equal(t, []string{"Technology"}, md.IndustryMatches)
	assert.InDelta(t, 10.0, md.InitialScore, 0.001)
	assert.LessOrEqual(t, md.InitialScore, 10.0)
}

func TestScore_InitialScoreAlwaysInRange(t *testing.T) {
	cases := []struct {
		name   string
		resume *types.Resume
		job    *types.JobPosting
	}{
		{"empty everything", &types.Resume{}, &types.JobPosting{}},
		{"resume empty, job demanding", &types.Resume{}, &types.JobPosting{
			RequiredSkills: []string{"Go", "Rust", "C"}, Industries: []string{"Tech"}, RequiredYearsOfExperience: 20,
		}},
		{"maxed out", &types.Resume{
			JobTitle: "Engineer", YearsOfExperience: 30,
			Industries: []string{"A", "B"}, Skills: []string{"x", "y", "z"},
		}, &types.JobPosting{
			Title: "Engineer", Industries: []string{"a", "b"}, RequiredSkills: []string{"x", "y", "z"},
		}},
	}

	for _, tc := range cases {
		md := Score(tc.resume, tc.job)
		assert.GreaterOrEqual(t, md.InitialScore, 0.0, tc.name)
		assert.LessOrEqual(t, md.InitialScore, 10.0, tc.name)
	}
}

func TestScore_FreshMatchDataHasZeroFinalScore(t *testing.T) {
	md := Score(&types.Resume{}, &types.JobPosting{})
	assert.Equal(t, 0.0, md.FinalScore)
	assert.False(t, md.SummaryTailored)
}

func TestTitlesMatch_MutualSubstring(t *testing.T) {
	assert.True(t, titlesMatch("Senior Software Engineer", "software engineer"))
	assert.True(t, titlesMatch("engineer", "Senior Engineer"))
	assert.False(t, titlesMatch("Product Manager", "Software Engineer"))
	assert.False(t, titlesMatch("", "Software Engineer"))
}

func TestTitlesMatch_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Software Engineer", "Senior Software Engineer"},
		{"Data Scientist", "Scientist"},
		{"Engineer", "Designer"},
	}
	for _, p := range pairs {
		assert.Equal(t, titlesMatch(p[0], p[1]), titlesMatch(p[1], p[0]), "pair %v", p)
	}
}

func TestFinalizeScore_SelectedSkillsCountAsMatched(t *testing.T) {
	job := &types.JobPosting{RequiredSkills: []string{"Go", "SQL", "Docker", "K8s"}}
	base := &types.MatchData{SkillMatches: []string{"Go"}}

	// 1 matched + 2 selected = 3/4 * 5 = 3.75; industry default 1 => 4.75 -> 4.8
	score := FinalizeScore(base, job, types.SectionSelection{}, []string{"SQL", "Docker"})
	assert.InDelta(t, 4.8, score, 0.001)
}

func TestFinalizeScore_SectionBoosts(t *testing.T) {
	job := &types.JobPosting{RequiredSkills: []string{"Go"}}
	base := &types.MatchData{SkillMatches: []string{"Go"}}

	without := FinalizeScore(base, job, types.SectionSelection{}, nil)
	with := FinalizeScore(base, job, types.SectionSelection{Summary: true, Experience: true}, nil)

	assert.InDelta(t, 2.0, with-without, 0.001)
}

func TestFinalizeScore_CappedAtTen(t *testing.T) {
	job := &types.JobPosting{RequiredSkills: []string{"Go"}, Industries: []string{"Tech"}}
	base := &types.MatchData{
		SkillMatches:    []string{"Go"},
		IndustryMatches: []string{"Tech"},
		TitleMatch:      true,
		ExperienceMatch: true,
	}

	score := FinalizeScore(base, job, types.SectionSelection{Summary: true, Experience: true}, []string{"Extra"})
	assert.InDelta(t, 10.0, score, 0.001)
}

func TestFinalizeScore_RetainsBaseComponents(t *testing.T) {
	job := &types.JobPosting{RequiredSkills: []string{"Go", "SQL"}, Industries: []string{"Tech", "Finance"}}
	base := &types.MatchData{
		SkillMatches:    []string{"Go"},
		IndustryMatches: []string{"Tech"},
		TitleMatch:      true,
		ExperienceMatch: false,
	}

	// skills 1/2*5 = 2.5, industry 1/2 = 0.5, title 2, exp 0 => 5.0
	score := FinalizeScore(base, job, types.SectionSelection{}, nil)
	require.InDelta(t, 5.0, score, 0.001)
}
