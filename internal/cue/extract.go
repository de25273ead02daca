package cue

import (
	"strconv"
	"strings"
	"time"
)

// Extract runs a descriptor's expression over the full payload and builds
// one cue per non-overlapping match, in match order. Regions the pattern
// does not match are skipped silently; a malformed segment is simply
// absent from the output rather than an error.
func Extract(text string, d Descriptor) []Cue {
	matches := d.expr.FindAllStringSubmatch(text, -1)
	cues := make([]Cue, 0, len(matches))
	for i, m := range matches {
		c := Cue{
			Index: i + 1,
			Start: resolveTime(m, d.sh, d.sm, d.ss, d.sms),
			End:   resolveTime(m, d.eh, d.em, d.es, d.ems),
		}
		// explicit leading counter when the format carries one; malformed
		// or absent counters fall back to the match position
		if n, ok := groupInt(m, d.idx); ok {
			c.Index = n
		}
		if d.text >= 0 && d.text < len(m) {
			c.Text = strings.TrimSpace(m[d.text])
		}
		cues = append(cues, c)
	}
	return cues
}

// resolveTime assembles a duration from captured clock fields. Absent
// optional groups (the short MM:SS.mmm layout has no hours) contribute
// zero, which is what distinguishes the two supported layouts per match.
func resolveTime(m []string, h, min, sec, ms int) time.Duration {
	hours, _ := groupInt(m, h)
	minutes, _ := groupInt(m, min)
	seconds, _ := groupInt(m, sec)
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(groupMillis(m, ms))*time.Millisecond
}

func groupInt(m []string, i int) (int, bool) {
	if i < 0 || i >= len(m) || m[i] == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// groupMillis treats the captured digits as a fraction of a second, so
// "5" means 500ms rather than 5ms when a pattern allows fewer than three
// digits.
func groupMillis(m []string, i int) int {
	if i < 0 || i >= len(m) || m[i] == "" {
		return 0
	}
	digits := m[i]
	for len(digits) < 3 {
		digits += "0"
	}
	n, err := strconv.Atoi(digits[:3])
	if err != nil {
		return 0
	}
	return n
}
