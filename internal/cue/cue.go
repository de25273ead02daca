package cue

import (
	"errors"
	"time"
)

// represents a single timed text cue
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// supported source formats
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatTTML Format = "ttml"
	FormatDFXP Format = "dfxp"
)

// unparsed subtitle payload with its declared format
type Source struct {
	Format Format
	Text   string
}

// format tag has no catalog entry and no custom pattern was supplied
var ErrUnsupportedFormat = errors.New("unsupported subtitle format")

// Equal reports full identity including the index, so the same content at
// a different sequence position compares unequal until reindexed.
func (c Cue) Equal(other Cue) bool {
	return c == other
}
