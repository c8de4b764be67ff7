package tailoring

import (
	"encoding/json"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/schemas"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// tailoredPayload is the structure the model is asked to return
type tailoredPayload struct {
	Summary         string                 `json:"summary"`
	Skills          []string               `json:"skills"`
	WorkExperiences []types.WorkExperience `json:"work_experiences"`
}

// parseReply extracts and validates the tailored-resume JSON object from a
// free-text model reply. Models pad replies with prose and markdown, so
// the first brace-delimited blob is pulled out before validation.
func parseReply(reply string) (*tailoredPayload, error) {
	blob := llm.ExtractJSONObject(llm.CleanJSONBlock(reply))
	if blob == "" {
		return nil, &ParseError{Message: "reply contains no JSON object"}
	}

	if err := schemas.Validate(schemas.TailoredResume, blob); err != nil {
		return nil, &ParseError{Message: "reply failed schema validation", Cause: err}
	}

	var payload tailoredPayload
	if err := json.Unmarshal([]byte(blob), &payload); err != nil {
		return nil, &ParseError{Message: "reply is not valid JSON", Cause: err}
	}

	return &payload, nil
}

// applyPayload copies the model's output onto the cloned resume, but only
// for the sections the caller selected. Unselected sections always pass
// through from the original, whatever the model returned for them.
func applyPayload(clone *types.Resume, payload *tailoredPayload, sections types.SectionSelection, selectedSkills []string) {
	if sections.Summary && strings.TrimSpace(payload.Summary) != "" {
		clone.Summary = strings.TrimSpace(payload.Summary)
	}

	if sections.Skills {
		clone.Skills = MergeSkills(clone.Skills, payload.Skills)
		clone.Skills = MergeSkills(clone.Skills, selectedSkills)
	}

	if sections.Experience && len(payload.WorkExperiences) > 0 {
		clone.WorkExperiences = payload.WorkExperiences
	}
}

// MergeSkills appends the additions that are not already present,
// comparing case-insensitively so "SQL" never joins an existing "sql".
// Existing order and casing are preserved; merging is idempotent.
func MergeSkills(existing, additions []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[strings.ToLower(strings.TrimSpace(s))] = true
	}

	out := existing
	for _, add := range additions {
		add = strings.TrimSpace(add)
		if add == "" {
			continue
		}
		key := strings.ToLower(add)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, add)
	}
	return out
}
