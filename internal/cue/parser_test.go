package cue

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestNewParserUnsupportedFormat(t *testing.T) {
	_, err := NewParser(Format("sub"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got: %v", err)
	}
}

func TestCatalogParserParse(t *testing.T) {
	p, err := NewParser(FormatSRT)
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}

	src := Source{
		Format: FormatSRT,
		Text:   "1\n00:00:01,000 --> 00:00:02,000\nHi\n",
	}
	cues, err := p.Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cues) != 1 || cues[0].Text != "Hi" {
		t.Errorf("unexpected cues: %+v", cues)
	}
}

func TestCustomParserWithDecodeFunc(t *testing.T) {
	// caller-defined format: "<seconds>-<seconds>|text" per line
	decode := func(match []string, position int) (Cue, bool) {
		start, err := strconv.Atoi(match[1])
		if err != nil {
			return Cue{}, false
		}
		end, err := strconv.Atoi(match[2])
		if err != nil {
			return Cue{}, false
		}
		return Cue{
			Index: position,
			Start: time.Duration(start) * time.Second,
			End:   time.Duration(end) * time.Second,
			Text:  match[3],
		}, true
	}

	p, err := NewCustomParser(`(\d+)-(\d+)\|([^\n]+)`, decode)
	if err != nil {
		t.Fatalf("NewCustomParser failed: %v", err)
	}

	src := Source{Format: Format("custom"), Text: "1-2|Hello\n3-4|World\n"}
	cues, err := p.Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Start != 1*time.Second || cues[0].End != 2*time.Second {
		t.Errorf("cue 0: bad span %+v", cues[0])
	}
	if cues[1].Index != 2 || cues[1].Text != "World" {
		t.Errorf("cue 1: %+v", cues[1])
	}
}

func TestCustomParserDecodeSkips(t *testing.T) {
	decode := func(match []string, position int) (Cue, bool) {
		if match[1] == "skip" {
			return Cue{}, false
		}
		return Cue{Index: position, Text: match[1]}, true
	}
	p, err := NewCustomParser(`\[(\w+)\]`, decode)
	if err != nil {
		t.Fatalf("NewCustomParser failed: %v", err)
	}
	cues, err := p.Parse(Source{Text: "[keep] [skip] [also]"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
}

func TestCustomParserNamedGroupsWithoutDecode(t *testing.T) {
	p, err := NewCustomParser(
		`(?P<sm>\d{2}):(?P<ss>\d{2}) --> (?P<em>\d{2}):(?P<es>\d{2}) (?P<text>[^\n]+)`,
		nil,
	)
	if err != nil {
		t.Fatalf("NewCustomParser failed: %v", err)
	}
	cues, err := p.Parse(Source{Text: "01:30 --> 01:45 Hi there"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Start != 90*time.Second || cues[0].End != 105*time.Second {
		t.Errorf("bad span: %+v", cues[0])
	}
	if cues[0].Text != "Hi there" {
		t.Errorf("bad text: %q", cues[0].Text)
	}
}
