package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *Resume {
	return &Resume{
		Name:              "Jane Doe",
		JobTitle:          "Software Engineer",
		ContactInfo:       ContactInfo{Phone: "555-0100", Email: "jane@example.com", LinkedIn: "linkedin.com/in/janedoe"},
		YearsOfExperience: 6,
		Industries:        []string{"Technology"},
		Skills:            []string{"Go", "PostgreSQL"},
		Summary:           "Backend engineer.",
		WorkExperiences: []WorkExperience{
			{
				Title:            "Engineer",
				Company:          "Acme",
				StartDate:        "2019-01",
				EndDate:          "Present",
				Responsibilities: []string{"Built services"},
				SubSections:      []SubSection{{Title: "Platform", Details: []string{"Migrated CI"}}},
			},
		},
		Education:        []Education{{Institution: "State University", Degree: "BSc", StartDate: "2013", EndDate: "2017"}},
		Projects:         []Project{{Title: "Side Project", Date: "June 2022"}},
		Certifications:   []Certification{{Name: "AWS SAA", DateRange: "Jan 2021 - Jan 2024"}},
		AdditionalSkills: []string{"Docker"},
		SoftSkills:       []SoftSkill{{Name: "communication", Description: "clear writer"}},
	}
}

func TestClone_DeepCopy(t *testing.T) {
	original := sampleResume()
	clone := original.Clone()

	require.NotSame(t, original, clone)
	assert.Equal(t, original, clone)

	// Mutating the clone must not leak into the original.
	clone.Skills[0] = "Rust"
	clone.WorkExperiences[0].Responsibilities[0] = "changed"
	clone.WorkExperiences[0].SubSections[0].Details[0] = "changed"
	clone.Industries = append(clone.Industries, "Healthcare")
	clone.Certifications[0].Name = "changed"

	assert.Equal(t, "Go", original.Skills[0])
	assert.Equal(t, "Built services", original.WorkExperiences[0].Responsibilities[0])
	assert.Equal(t, "Migrated CI", original.WorkExperiences[0].SubSections[0].Details[0])
	assert.Equal(t, []string{"Technology"}, original.Industries)
	assert.Equal(t, "AWS SAA", original.Certifications[0].Name)
}

func TestClone_NilReceiver(t *testing.T) {
	var r *Resume
	assert.Nil(t, r.Clone())
}

func TestClone_PreservesNilOptionalSections(t *testing.T) {
	r := &Resume{Name: "Min"}
	clone := r.Clone()

	assert.Nil(t, clone.Projects)
	assert.Nil(t, clone.Certifications)
	assert.Nil(t, clone.AdditionalSkills)
	assert.Nil(t, clone.SoftSkills)
}
