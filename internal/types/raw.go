//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strconv"
)

// RawParsedResume is the loosely-structured payload produced by the parser
// chain (remote parser service, LLM extraction, or the regex fallback).
// Every field may be absent or of an unexpected primitive type; the
// tolerant Flex types below absorb the type mismatches so the normalizer
// never has to fail on malformed input.
type RawParsedResume struct {
	Personal   *RawPersonal    `json:"personal,omitempty"`
	Experience []RawExperience `json:"experience,omitempty"`
	Education  []RawEducation  `json:"education,omitempty"`
	Skills     FlexStrings     `json:"skills,omitempty"`
	RawText    FlexString      `json:"raw_text,omitempty"`
}

// RawPersonal holds loosely-typed personal details
type RawPersonal struct {
	Name     FlexString `json:"name,omitempty"`
	Title    FlexString `json:"title,omitempty"`
	Summary  FlexString `json:"summary,omitempty"`
	Phone    FlexString `json:"phone,omitempty"`
	Email    FlexString `json:"email,omitempty"`
	LinkedIn FlexString `json:"linkedin,omitempty"`
}

// RawExperience holds a loosely-typed work experience entry
type RawExperience struct {
	Title        FlexString  `json:"title,omitempty"`
	Company      FlexString  `json:"company,omitempty"`
	Location     FlexString  `json:"location,omitempty"`
	StartDate    FlexString  `json:"start_date,omitempty"`
	EndDate      FlexString  `json:"end_date,omitempty"`
	JobType      FlexString  `json:"job_type,omitempty"`
	Industry     FlexString  `json:"industry,omitempty"`
	Summary      FlexString  `json:"summary,omitempty"`
	Achievements FlexStrings `json:"achievements,omitempty"`
}

// RawEducation holds a loosely-typed education entry
type RawEducation struct {
	Institution FlexString `json:"institution,omitempty"`
	Degree      FlexString `json:"degree,omitempty"`
	Field       FlexString `json:"field,omitempty"`
	GPA         FlexString `json:"gpa,omitempty"`
	StartDate   FlexString `json:"start_date,omitempty"`
	EndDate     FlexString `json:"end_date,omitempty"`
}

// FlexString is a string that tolerates JSON numbers, booleans and null.
// Anything that is not representable as text decodes to "".
type FlexString string

// UnmarshalJSON implements tolerant decoding for FlexString
func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}

	// null, booleans, objects, arrays: default to empty
	*f = ""
	return nil
}

// String returns the underlying string value
func (f FlexString) String() string { return string(f) }

// FlexStrings is a string slice that tolerates a bare string, a mixed-type
// array, or any non-array value. Non-string array elements are dropped.
type FlexStrings []string

// UnmarshalJSON implements tolerant decoding for FlexStrings
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		out := make([]string, 0, len(items))
		for _, item := range items {
			var s string
			if err := json.Unmarshal(item, &s); err == nil {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = []string{s}
		return nil
	}

	*f = nil
	return nil
}
