package cue

import "time"

// Index answers playback-time queries over a finalized, start-sorted cue
// sequence. It holds the sequence it was built with and never mutates it.
type Index struct {
	cues []Cue
}

func NewIndex(cues []Cue) *Index {
	return &Index{cues: cues}
}

// At binary-searches for a cue whose [Start, End] interval contains t,
// inclusive at both ends. A candidate is too early when t > End and too
// late when t < Start. Returns false for an empty sequence or when t
// falls in a gap. When intervals overlap the cue the bisection lands on
// first wins, not necessarily the earliest; use Range when every match
// matters. At an instant where one cue's End equals the next cue's
// Start, both contain t and the returned cue is search-order dependent.
func (ix *Index) At(t time.Duration) (Cue, bool) {
	lo, hi := 0, len(ix.cues)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		c := ix.cues[mid]
		switch {
		case t > c.End:
			lo = mid + 1
		case t < c.Start:
			hi = mid - 1
		default:
			return c, true
		}
	}
	return Cue{}, false
}

// Range collects every cue whose interval contains t, in sequence order.
// Linear scan; the complete answer when intervals may overlap.
func (ix *Index) Range(t time.Duration) []Cue {
	var out []Cue
	for _, c := range ix.cues {
		if t >= c.Start && t <= c.End {
			out = append(out, c)
		}
	}
	return out
}

func (ix *Index) Len() int {
	return len(ix.cues)
}

// Cues returns the underlying sequence; callers must not modify it.
func (ix *Index) Cues() []Cue {
	return ix.cues
}
