//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a job posting as stored by the persistence layer.
// It is an immutable input to scoring and tailoring; nothing in the core
// ever mutates one.
type JobPosting struct {
	Title                     string   `json:"title"`
	Company                   string   `json:"company"`
	Location                  string   `json:"location"`
	SalaryRange               string   `json:"salary_range"`
	EmploymentType            string   `json:"employment_type"`
	RequiredYearsOfExperience int      `json:"required_years_of_experience"`
	Industries                []string `json:"industries"`
	RequiredSkills            []string `json:"required_skills"`
	Description               string   `json:"description"`
}
