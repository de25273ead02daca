package cue

import (
	"fmt"
	"regexp"
)

// Descriptor is a per-format expression plus the resolved positions of its
// capture groups. Groups are located by name so each format's pattern can
// order them however its syntax requires:
//
//	idx                  explicit leading cue counter (optional)
//	sh sm ss sms         start hours/minutes/seconds/millis
//	eh em es ems         end hours/minutes/seconds/millis
//	text                 cue text body
//
// Any group a pattern omits resolves to -1 and defaults to zero (or the
// 1-based match position for idx) during extraction.
type Descriptor struct {
	expr *regexp.Regexp

	idx  int
	sh   int
	sm   int
	ss   int
	sms  int
	eh   int
	em   int
	es   int
	ems  int
	text int
}

func newDescriptor(expr *regexp.Regexp) Descriptor {
	return Descriptor{
		expr: expr,
		idx:  expr.SubexpIndex("idx"),
		sh:   expr.SubexpIndex("sh"),
		sm:   expr.SubexpIndex("sm"),
		ss:   expr.SubexpIndex("ss"),
		sms:  expr.SubexpIndex("sms"),
		eh:   expr.SubexpIndex("eh"),
		em:   expr.SubexpIndex("em"),
		es:   expr.SubexpIndex("es"),
		ems:  expr.SubexpIndex("ems"),
		text: expr.SubexpIndex("text"),
	}
}

// NewDescriptor compiles a caller-supplied pattern into a Descriptor. The
// pattern uses the same named groups as the built-in catalog; unnamed or
// missing groups simply default during extraction.
func NewDescriptor(pattern string) (Descriptor, error) {
	expr, err := regexp.Compile(pattern)
	if err != nil {
		return Descriptor{}, fmt.Errorf("invalid cue pattern: %w", err)
	}
	return newDescriptor(expr), nil
}

var (
	// index line, comma-millis timing line, text lines until a blank line
	srtDescriptor = newDescriptor(regexp.MustCompile(
		`(?:(?P<idx>\d+)\r?\n)?` +
			`(?P<sh>\d{2}):(?P<sm>\d{2}):(?P<ss>\d{2}),(?P<sms>\d{3})` +
			`[ \t]*-->[ \t]*` +
			`(?P<eh>\d{2}):(?P<em>\d{2}):(?P<es>\d{2}),(?P<ems>\d{3})` +
			`[^\n]*\r?\n` +
			`(?P<text>(?:[^\r\n]+\r?\n?)*)`,
	))

	// dot-millis timing with an optional hours component on either side;
	// trailing cue settings after the end timestamp are ignored
	vttDescriptor = newDescriptor(regexp.MustCompile(
		`(?:(?P<idx>\d+)\r?\n)?` +
			`(?:(?P<sh>\d{2}):)?(?P<sm>\d{2}):(?P<ss>\d{2})\.(?P<sms>\d{3})` +
			`[ \t]*-->[ \t]*` +
			`(?:(?P<eh>\d{2}):)?(?P<em>\d{2}):(?P<es>\d{2})\.(?P<ems>\d{3})` +
			`[^\n]*\r?\n` +
			`(?P<text>(?:[^\r\n]+\r?\n?)*)`,
	))

	// tag-based timed paragraphs, begin/end clock values in attributes
	ttmlDescriptor = newDescriptor(regexp.MustCompile(
		`(?s)<(?:tt:)?p\b[^>]*\bbegin="` +
			`(?:(?P<sh>\d+):)?(?P<sm>\d+):(?P<ss>\d+)(?:[.,](?P<sms>\d{1,3}))?` +
			`"[^>]*\bend="` +
			`(?:(?P<eh>\d+):)?(?P<em>\d+):(?P<es>\d+)(?:[.,](?P<ems>\d{1,3}))?` +
			`"[^>]*>(?P<text>.*?)</(?:tt:)?p>`,
	))
)

// Catalog returns the built-in Descriptor for a format tag, or
// ErrUnsupportedFormat when no pattern exists for it. Pure lookup, no
// side effects.
func Catalog(format Format) (Descriptor, error) {
	switch format {
	case FormatSRT:
		return srtDescriptor, nil
	case FormatVTT:
		return vttDescriptor, nil
	case FormatTTML, FormatDFXP:
		return ttmlDescriptor, nil
	default:
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
