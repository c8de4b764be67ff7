package extraction

import (
	"regexp"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	linkedinRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+`)
)

// skillVocabulary is the fixed keyword list the last-resort extractor
// scans for. Case-insensitive whole-word-ish matching; casing below is the
// canonical display form.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Go", "C++", "C#", "Ruby",
	"React", "Angular", "Vue", "Node.js", "HTML", "CSS", "SQL", "PostgreSQL",
	"MySQL", "MongoDB", "Redis", "AWS", "Azure", "GCP", "Docker", "Kubernetes",
	"Git", "Linux", "REST", "GraphQL", "Terraform", "communication",
	"leadership", "interpersonal", "organized", "learning mindset",
}

// RegexExtract is tier three of the parser chain: a pure, always-
// succeeding extractor that mines the contact email, LinkedIn URL and
// known skill keywords from plain text. The first line doubles as a name
// guess when it looks like one.
func RegexExtract(text string) *types.RawParsedResume {
	raw := &types.RawParsedResume{
		RawText:  types.FlexString(text),
		Personal: &types.RawPersonal{},
	}

	if email := emailRe.FindString(text); email != "" {
		raw.Personal.Email = types.FlexString(email)
	}
	if profile := linkedinRe.FindString(text); profile != "" {
		raw.Personal.LinkedIn = types.FlexString(profile)
	}
	if name := firstLineName(text); name != "" {
		raw.Personal.Name = types.FlexString(name)
	}

	lower := strings.ToLower(text)
	for _, skill := range skillVocabulary {
		if containsToken(lower, strings.ToLower(skill)) {
			raw.Skills = append(raw.Skills, skill)
		}
	}

	return raw
}

// firstLineName treats a short, digit-free first line as the candidate
// name. Resumes nearly always open with one.
func firstLineName(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	line = strings.TrimSpace(line)
	if line == "" || len(line) > 60 {
		return ""
	}
	if strings.ContainsAny(line, "0123456789@/") {
		return ""
	}
	if words := strings.Fields(line); len(words) > 5 {
		return ""
	}
	return line
}

// containsToken reports whether needle occurs in haystack without being
// glued to surrounding letters, so "go" does not match "mongodb".
func containsToken(haystack, needle string) bool {
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(needle)

		beforeOK := start == 0 || !isWordByte(haystack[start-1])
		afterOK := end == len(haystack) || !isWordByte(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
