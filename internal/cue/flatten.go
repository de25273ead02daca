package cue

import (
	"sort"
	"strings"
	"time"
)

const (
	// DefaultNearGap is the threshold below which two adjacent same-text
	// cues are considered fragments of one line. Negative gaps (overlaps)
	// always qualify.
	DefaultNearGap = 500 * time.Millisecond

	// DefaultMaxRounds caps the convergence loop. The loop normally stops
	// as soon as a round performs zero merges; the cap only bounds the
	// worst case, so a duplicate chain longer than the cap resolves
	// partially.
	DefaultMaxRounds = 10
)

// Flattener turns a raw extracted sequence into a cleaned one: empty cues
// dropped, duplicate and near-duplicate fragments merged, text sanitized,
// indices reassigned 1..N, sorted ascending by start.
type Flattener struct {
	NearGap   time.Duration
	MaxRounds int
	Sanitizer Sanitizer
}

func NewFlattener() *Flattener {
	return &Flattener{
		NearGap:   DefaultNearGap,
		MaxRounds: DefaultMaxRounds,
	}
}

// Flatten never mutates its input; every pass builds a fresh slice.
func (f *Flattener) Flatten(cues []Cue) []Cue {
	out := dropEmpty(cues)
	out, _ = mergePass(out, exactSpan, mergeExact)

	rounds := f.MaxRounds
	if rounds <= 0 {
		rounds = DefaultMaxRounds
	}
	for round := 0; round < rounds; round++ {
		merges := 0
		var n int

		out, n = mergePass(out, contiguousDuplicate, mergeSpan)
		merges += n
		out, n = mergePass(out, f.nearDuplicate, mergeSpan)
		merges += n
		out, n = trimTrailingOverlap(out)
		merges += n
		out = f.reindex(out)

		if merges == 0 {
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	for i := range out {
		out[i].Index = i + 1
	}
	return out
}

func dropEmpty(cues []Cue) []Cue {
	out := make([]Cue, 0, len(cues))
	for _, c := range cues {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// mergePass scans adjacent pairs once, combining each pair the predicate
// accepts. A merged cue is not reconsidered against its next neighbor
// within the same pass; chains of three or more fragments collapse over
// subsequent rounds.
func mergePass(
	cues []Cue,
	shouldMerge func(prev, cur Cue) bool,
	merge func(prev, cur Cue) Cue,
) ([]Cue, int) {
	out := make([]Cue, 0, len(cues))
	merges := 0
	for i := 0; i < len(cues); i++ {
		if i+1 < len(cues) && shouldMerge(cues[i], cues[i+1]) {
			out = append(out, merge(cues[i], cues[i+1]))
			merges++
			i++
			continue
		}
		out = append(out, cues[i])
	}
	return out, merges
}

// both cues cover the same interval, regardless of text
func exactSpan(prev, cur Cue) bool {
	return prev.Start == cur.Start && prev.End == cur.End
}

// same text, back to back with no gap
func contiguousDuplicate(prev, cur Cue) bool {
	return prev.Text == cur.Text && prev.End == cur.Start
}

// same text, separated (or overlapped) by less than the threshold
func (f *Flattener) nearDuplicate(prev, cur Cue) bool {
	gap := f.NearGap
	if gap <= 0 {
		gap = DefaultNearGap
	}
	return prev.Text == cur.Text && cur.Start-prev.End < gap
}

// mergeExact collapses two cues over one interval, keeping the first text
// alone when the pair repeats it and stacking both otherwise.
func mergeExact(prev, cur Cue) Cue {
	text := prev.Text
	if cur.Text != prev.Text {
		text = prev.Text + "\n" + cur.Text
	}
	return Cue{Index: prev.Index, Start: prev.Start, End: prev.End, Text: text}
}

// mergeSpan joins two same-text fragments into one cue covering both.
func mergeSpan(prev, cur Cue) Cue {
	return Cue{Index: prev.Index, Start: prev.Start, End: cur.End, Text: prev.Text}
}

// trimTrailingOverlap drops the final cue when it ends before the
// second-to-last even starts, a fully out-of-order trailing artifact.
func trimTrailingOverlap(cues []Cue) ([]Cue, int) {
	if len(cues) < 2 {
		return cues, 0
	}
	last := cues[len(cues)-1]
	if last.End >= cues[len(cues)-2].Start {
		return cues, 0
	}
	out := make([]Cue, len(cues)-1)
	copy(out, cues[:len(cues)-1])
	return out, 1
}

// reindex reassigns 1-based positions and sanitizes every text, once per
// round.
func (f *Flattener) reindex(cues []Cue) []Cue {
	out := make([]Cue, len(cues))
	for i, c := range cues {
		c.Index = i + 1
		c.Text = f.Sanitizer.Clean(c.Text)
		out[i] = c
	}
	return out
}
