// Package types provides type definitions for structured data used throughout the job-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the canonical resume record produced by the normalizer.
// It is treated as immutable by scoring and tailoring; tailoring always
// works on a Clone.
type Resume struct {
	Name              string           `json:"name"`
	JobTitle          string           `json:"job_title"`
	ContactInfo       ContactInfo      `json:"contact_info"`
	YearsOfExperience int              `json:"years_of_experience"`
	Industries        []string         `json:"industries"`
	Skills            []string         `json:"skills"`
	Summary           string           `json:"summary"`
	WorkExperiences   []WorkExperience `json:"work_experiences"`
	Education         []Education      `json:"education"`

	// Optional sections: nil means "absent after extraction" so renderers
	// can branch on presence.
	Projects         []Project       `json:"projects,omitempty"`
	Certifications   []Certification `json:"certifications,omitempty"`
	AdditionalSkills []string        `json:"additional_skills,omitempty"`
	SoftSkills       []SoftSkill     `json:"soft_skills,omitempty"`
}

// ContactInfo holds the candidate's contact details
type ContactInfo struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
}

// WorkExperience represents a single role on the resume
type WorkExperience struct {
	Title            string       `json:"title"`
	Company          string       `json:"company"`
	Location         string       `json:"location"`
	StartDate        string       `json:"start_date"`
	EndDate          string       `json:"end_date"` // "Present" when the role is current
	Responsibilities []string     `json:"responsibilities"`
	SubSections      []SubSection `json:"sub_sections,omitempty"`
}

// SubSection represents a named group of details within a work experience
type SubSection struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// Education represents a single education entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Project represents a personal or professional project mined from raw text
type Project struct {
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// Certification represents a certification with its validity range
type Certification struct {
	Name      string `json:"name"`
	DateRange string `json:"date_range"`
}

// SoftSkill represents a soft skill split into a name and optional description
type SoftSkill struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Clone returns a deep copy of the resume. No slice or struct is shared
// with the receiver, so mutating the copy never touches the original.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}

	out := *r
	out.Industries = cloneStrings(r.Industries)
	out.Skills = cloneStrings(r.Skills)
	out.AdditionalSkills = cloneStrings(r.AdditionalSkills)

	if r.WorkExperiences != nil {
		out.WorkExperiences = make([]WorkExperience, len(r.WorkExperiences))
		for i, exp := range r.WorkExperiences {
			copied := exp
			copied.Responsibilities = cloneStrings(exp.Responsibilities)
			if exp.SubSections != nil {
				copied.SubSections = make([]SubSection, len(exp.SubSections))
				for j, sub := range exp.SubSections {
					copiedSub := sub
					copiedSub.Details = cloneStrings(sub.Details)
					copied.SubSections[j] = copiedSub
				}
			}
			out.WorkExperiences[i] = copied
		}
	}

	if r.Education != nil {
		out.Education = make([]Education, len(r.Education))
		copy(out.Education, r.Education)
	}
	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		copy(out.Projects, r.Projects)
	}
	if r.Certifications != nil {
		out.Certifications = make([]Certification, len(r.Certifications))
		copy(out.Certifications, r.Certifications)
	}
	if r.SoftSkills != nil {
		out.SoftSkills = make([]SoftSkill, len(r.SoftSkills))
		copy(out.SoftSkills, r.SoftSkills)
	}

	return &out
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
