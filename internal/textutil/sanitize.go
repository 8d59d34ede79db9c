package textutil

import (
	"regexp"
	"strings"
)

var (
	fencedCode = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\n?(.*?)```")
	inlineCode = regexp.MustCompile("`([^`\n]*)`")
	heading    = regexp.MustCompile(`(?m)^[ \t]*(?:#+[ \t]*)+`)
	emphasis   = regexp.MustCompile(`\*\*|__|\*`)
	bullet     = regexp.MustCompile(`(?m)^[ \t]*(?:[-+][ \t]+)+`)
	numbering  = regexp.MustCompile(`(\d+)\.[ \t]+`)
	spaceRuns  = regexp.MustCompile(`[ \t]+`)
	lineEdges  = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
)

// SanitizeMarkdown strips lightweight markup from model output so it reads as
// plain prose: headings, bold/italic markers, bullet markers, and code spans
// are unwrapped with their content preserved, runs of spaces collapse to one,
// and runs of blank lines collapse to a single blank line. The function is
// idempotent.
func SanitizeMarkdown(text string) string {
	text = fencedCode.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = heading.ReplaceAllString(text, "")
	text = emphasis.ReplaceAllString(text, "")
	text = bullet.ReplaceAllString(text, "")
	text = numbering.ReplaceAllString(text, "$1. ")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = lineEdges.ReplaceAllString(text, "")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
