//nolint:revive // types is a standard Go package name pattern
package types

// EditMode selects how much of the resume the tailoring pass may rewrite
type EditMode string

// Edit mode constants
const (
	// EditModeQuick rewrites only the selected sections with light touches
	EditModeQuick EditMode = "quick"
	// EditModeFull allows a more aggressive rewrite of the selected sections
	EditModeFull EditMode = "full"
)

// SectionSelection records which resume sections the caller opted to tailor.
// It is ephemeral, caller-supplied state and is never persisted by the core.
type SectionSelection struct {
	Summary    bool     `json:"summary"`
	Skills     bool     `json:"skills"`
	Experience bool     `json:"experience"`
	EditMode   EditMode `json:"edit_mode"`
}

// SessionStep identifies a step in the tailoring flow
type SessionStep string

// Tailoring flow steps, in order
const (
	StepAnalyze   SessionStep = "analyze"
	StepCustomize SessionStep = "customize"
	StepPreview   SessionStep = "preview"
)
