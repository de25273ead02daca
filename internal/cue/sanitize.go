package cue

import (
	"regexp"
	"strings"
)

var (
	markupTagPattern = regexp.MustCompile(`<[^>]*>`)
	// style directives swallow their leading whitespace so removal does
	// not leave a double space behind
	styleBracePattern = regexp.MustCompile(`\s*\{[^}]*\}`)
)

// Sanitizer normalizes cue text during reconciliation.
type Sanitizer struct {
	// NbspAsApostrophe restores the legacy decoding of &nbsp; to an
	// apostrophe for byte-compatible output; the default decodes it to a
	// plain space.
	NbspAsApostrophe bool
}

// Clean applies the transforms in fixed order: markup tag removal, brace
// style removal, <br>/literal-\n to newline, entity decoding, and
// zero-width artifact stripping. A well-formed <br> is consumed by the
// generic tag removal; the explicit rewrite only catches occurrences that
// survive it.
func (s Sanitizer) Clean(text string) string {
	text = markupTagPattern.ReplaceAllString(text, "")
	text = styleBracePattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "<br>", "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&apos;", "'")
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	nbsp := " "
	if s.NbspAsApostrophe {
		nbsp = "'"
	}
	text = strings.ReplaceAll(text, "&nbsp;", nbsp)
	text = strings.ReplaceAll(text, "\u200b", "")
	text = strings.ReplaceAll(text, "\ufeff", "")
	return text
}
