package tailoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

func TestParseReply_ExtractsObjectFromProse(t *testing.T) {
	reply := "Here you go!\n```json\n{\"summary\": \"tailored\", \"skills\": [\"Go\"]}\n```\nHope that helps."

	payload, err := parseReply(reply)
	require.NoError(t, err)
	assert.Equal(t, "tailored", payload.Summary)
	assert.Equal(t, []string{"Go"}, payload.Skills)
}

func TestParseReply_NoJSONObject(t *testing.T) {
	_, err := parseReply("I am unable to produce a resume right now.")
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseReply_SchemaViolation(t *testing.T) {
	_, err := parseReply(`{"summary": 12, "skills": "Go"}`)
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestMergeSkills_CaseInsensitiveDedup(t *testing.T) {
	merged := MergeSkills([]string{"JavaScript", "React"}, []string{"javascript", "Redux", "REACT", "Redux"})
	assert.Equal(t, []string{"JavaScript", "React", "Redux"}, merged)
}

func TestMergeSkills_Idempotent(t *testing.T) {
	once := MergeSkills([]string{"Go"}, []string{"SQL"})
	twice := MergeSkills(once, []string{"SQL", "sql"})
	assert.Equal(t, once, twice)
}

func TestMergeSkills_SkipsBlanks(t *testing.T) {
	merged := MergeSkills([]string{"Go"}, []string{"", "   ", "SQL"})
	assert.Equal(t, []string{"Go", "SQL"}, merged)
}

func TestApplyPayload_SkillsSectionMergesSelected(t *testing.T) {
	clone := &types.Resume{Skills: []string{"Go"}}
	payload := &tailoredPayload{Skills: []string{"SQL"}}

	applyPayload(clone, payload, types.SectionSelection{Skills: true}, []string{"Docker", "go"})

	assert.Equal(t, []string{"Go", "SQL", "Docker"}, clone.Skills)
}

func TestApplyPayload_BlankModelSummaryKeepsOriginal(t *testing.T) {
	clone := &types.Resume{Summary: "original"}
	payload := &tailoredPayload{Summary: "   "}

	applyPayload(clone, payload, types.SectionSelection{Summary: true}, nil)

	assert.Equal(t, "original", clone.Summary)
}
