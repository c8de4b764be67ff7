package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/schemas"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// maxExtractionChars bounds the prompt size for very long documents
const maxExtractionChars = 12000

// llmExtract is tier two of the parser chain: structured-JSON extraction
// of the canonical raw shape from plain resume text.
func llmExtract(ctx context.Context, client llm.Client, text string) (*types.RawParsedResume, error) {
	if len(text) > maxExtractionChars {
		text = text[:maxExtractionChars]
	}

	reply, err := client.GenerateJSON(ctx, buildExtractionPrompt(text), llm.TierLite)
	if err != nil {
		return nil, err
	}

	blob := llm.ExtractJSONObject(reply)
	if blob == "" {
		return nil, fmt.Errorf("extraction reply contains no JSON object")
	}
	if err := schemas.Validate(schemas.ExtractedResume, blob); err != nil {
		return nil, fmt.Errorf("extraction reply failed schema validation: %w", err)
	}

	var raw types.RawParsedResume
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("extraction reply is not valid JSON: %w", err)
	}

	// Keep the source text for the downstream regex miners.
	raw.RawText = types.FlexString(text)
	return &raw, nil
}

func buildExtractionPrompt(text string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert resume parser. Extract structured candidate data from the resume text below. ")
	sb.WriteString("Copy values verbatim; do not invent or summarize.\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{
  "personal": {"name": "", "title": "", "summary": "", "phone": "", "email": "", "linkedin": ""},
  "experience": [{"title": "", "company": "", "location": "", "start_date": "YYYY-MM", "end_date": "YYYY-MM or empty if current", "industry": "", "achievements": [""]}],
  "education": [{"institution": "", "degree": "", "field": "", "gpa": "", "start_date": "", "end_date": ""}],
  "skills": [""]
}` + "\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Omit fields you cannot find rather than guessing.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")

	sb.WriteString("Resume text:\n\"\"\"\n")
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}
