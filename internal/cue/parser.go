package cue

// interface for decoding one raw payload into an ordered raw cue sequence
type Parser interface {
	Parse(src Source) ([]Cue, error)
}

// DecodeFunc maps one raw pattern match to a cue. position is the 1-based
// match position; returning ok=false skips the segment.
type DecodeFunc func(match []string, position int) (c Cue, ok bool)

// built-in parser driven by the pattern catalog
type catalogParser struct{}

// custom parser driven by a caller-supplied pattern and decoder
type customParser struct {
	descriptor Descriptor
	decode     DecodeFunc
}

// NewParser returns the catalog-backed parser for a built-in format,
// failing up front when the format has no catalog entry.
func NewParser(format Format) (Parser, error) {
	if _, err := Catalog(format); err != nil {
		return nil, err
	}
	return &catalogParser{}, nil
}

// NewCustomParser builds a parser around a caller-supplied pattern,
// bypassing the catalog entirely. decode may be nil, in which case the
// pattern's named groups are resolved the same way catalog patterns are.
func NewCustomParser(pattern string, decode DecodeFunc) (Parser, error) {
	d, err := NewDescriptor(pattern)
	if err != nil {
		return nil, err
	}
	return &customParser{descriptor: d, decode: decode}, nil
}

func (p *catalogParser) Parse(src Source) ([]Cue, error) {
	d, err := Catalog(src.Format)
	if err != nil {
		return nil, err
	}
	return Extract(src.Text, d), nil
}

func (p *customParser) Parse(src Source) ([]Cue, error) {
	if p.decode == nil {
		return Extract(src.Text, p.descriptor), nil
	}
	matches := p.descriptor.expr.FindAllStringSubmatch(src.Text, -1)
	cues := make([]Cue, 0, len(matches))
	for i, m := range matches {
		if c, ok := p.decode(m, i+1); ok {
			cues = append(cues, c)
		}
	}
	return cues, nil
}
