package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// remoteTimeout bounds the specialized parser call; a timeout degrades to
// the next tier like any other failure.
const remoteTimeout = 30 * time.Second

// ParserService is a client for the optional specialized resume-parsing
// service. It performs a single multipart upload per parse with no retry;
// any failure is reported to the chain, which moves on.
type ParserService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewParserService creates a client, or nil when no service is configured.
func NewParserService(baseURL, apiKey string) *ParserService {
	if baseURL == "" {
		return nil
	}
	return &ParserService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: remoteTimeout},
	}
}

// ServiceError represents a failed call to the parser service
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parser service: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parser service: %s", e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

// vendorCandidate is the service's response shape, remapped field by field
// into the canonical raw payload.
type vendorCandidate struct {
	CandidateName  string   `json:"candidate_name"`
	JobTitle       string   `json:"job_title"`
	Summary        string   `json:"summary"`
	Emails         []string `json:"emails"`
	PhoneNumbers   []string `json:"phone_numbers"`
	LinkedIn       string   `json:"linkedin"`
	WorkExperience []struct {
		JobTitle     string `json:"job_title"`
		Organization string `json:"organization"`
		Location     string `json:"location"`
		Industry     string `json:"industry"`
		Dates        struct {
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		} `json:"dates"`
		Highlights []string `json:"highlights"`
	} `json:"work_experience"`
	Education []struct {
		Organization string `json:"organization"`
		Degree       string `json:"degree"`
		Field        string `json:"field"`
		GPA          string `json:"gpa"`
		Dates        struct {
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		} `json:"dates"`
	} `json:"education"`
	Skills []struct {
		Name string `json:"name"`
	} `json:"skills"`
}

// Parse uploads the resume file and remaps the vendor response into the
// canonical raw shape.
func (p *ParserService) Parse(ctx context.Context, data []byte, filename string) (*types.RawParsedResume, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &ServiceError{Message: "failed to build upload", Cause: err}
	}
	if _, err := part.Write(data); err != nil {
		return nil, &ServiceError{Message: "failed to build upload", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &ServiceError{Message: "failed to build upload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/parse", &body)
	if err != nil {
		return nil, &ServiceError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ServiceError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{Message: "failed to read response", Cause: err}
	}

	var candidate vendorCandidate
	if err := json.Unmarshal(respBody, &candidate); err != nil {
		return nil, &ServiceError{Message: "malformed response", Cause: err}
	}

	return remapCandidate(&candidate), nil
}

func remapCandidate(c *vendorCandidate) *types.RawParsedResume {
	raw := &types.RawParsedResume{
		Personal: &types.RawPersonal{
			Name:     types.FlexString(c.CandidateName),
			Title:    types.FlexString(c.JobTitle),
			Summary:  types.FlexString(c.Summary),
			LinkedIn: types.FlexString(c.LinkedIn),
		},
	}
	if len(c.Emails) > 0 {
		raw.Personal.Email = types.FlexString(c.Emails[0])
	}
	if len(c.PhoneNumbers) > 0 {
		raw.Personal.Phone = types.FlexString(c.PhoneNumbers[0])
	}

	for _, exp := range c.WorkExperience {
		raw.Experience = append(raw.Experience, types.RawExperience{
			Title:        types.FlexString(exp.JobTitle),
			Company:      types.FlexString(exp.Organization),
			Location:     types.FlexString(exp.Location),
			Industry:     types.FlexString(exp.Industry),
			StartDate:    types.FlexString(exp.Dates.StartDate),
			EndDate:      types.FlexString(exp.Dates.EndDate),
			Achievements: exp.Highlights,
		})
	}

	for _, edu := range c.Education {
		raw.Education = append(raw.Education, types.RawEducation{
			Institution: types.FlexString(edu.Organization),
			Degree:      types.FlexString(edu.Degree),
			Field:       types.FlexString(edu.Field),
			GPA:         types.FlexString(edu.GPA),
			StartDate:   types.FlexString(edu.Dates.StartDate),
			EndDate:     types.FlexString(edu.Dates.EndDate),
		})
	}

	for _, skill := range c.Skills {
		if skill.Name != "" {
			raw.Skills = append(raw.Skills, skill.Name)
		}
	}

	return raw
}
