package parsing

import (
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// softSkillVocabulary is the fixed set of markers that classify a skill
// string as a soft skill. Matching is deliberately case-sensitive: parser
// output lowercases these phrases, and "Leadership Institute" style proper
// nouns in skill names should not reclassify a technical entry.
var softSkillVocabulary = []string{
	"communication",
	"leadership",
	"interpersonal",
	"organized",
	"learning mindset",
}

// PartitionSkills splits a raw skill list into the full ordered skill list
// used for matching, the non-soft remainder (additional skills), and the
// soft skills parsed into name/description pairs. Soft skill strings split
// on the first ":".
func PartitionSkills(raw []string) (skills, additional []string, soft []types.SoftSkill) {
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)

		if isSoftSkill(s) {
			soft = append(soft, splitSoftSkill(s))
		} else {
			additional = append(additional, s)
		}
	}
	return skills, additional, soft
}

func isSoftSkill(s string) bool {
	for _, marker := range softSkillVocabulary {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

func splitSoftSkill(s string) types.SoftSkill {
	name, description, found := strings.Cut(s, ":")
	if !found {
		return types.SoftSkill{Name: strings.TrimSpace(s)}
	}
	return types.SoftSkill{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
}
