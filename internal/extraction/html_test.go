package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionTextPlainPassthrough(t *testing.T) {
	assert.Equal(t, "Build great software.", DescriptionText("  Build great software. \n"))
}

func TestDescriptionTextStripsMarkup(t *testing.T) {
	html := `<div>
		<h2>About the role</h2>
		<p>We are hiring a <strong>Senior Engineer</strong>.</p>
		<ul><li>Ship features</li><li>Review code</li></ul>
		<script>track();</script>
		<style>.x { color: red }</style>
	</div>`

	text := DescriptionText(html)

	assert.Contains(t, text, "About the role")
	assert.Contains(t, text, "We are hiring a Senior Engineer.")
	assert.Contains(t, text, "Ship features")
	assert.Contains(t, text, "Review code")
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "<")
}

func TestDescriptionTextListItemsOnSeparateLines(t *testing.T) {
	text := DescriptionText("<ul><li>First</li><li>Second</li></ul>")

	assert.Contains(t, text, "First\n")
	assert.Contains(t, text, "Second")
}

func TestDescriptionTextBreakTags(t *testing.T) {
	text := DescriptionText("<p>line one<br>line two</p>")

	assert.Contains(t, text, "line one\nline two")
}
