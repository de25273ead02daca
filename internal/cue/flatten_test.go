package cue

import (
	"reflect"
	"testing"
	"time"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestFlattenTwoFragmentSRTBlock(t *testing.T) {
	content := "1\n" +
		"00:00:01,000 --> 00:00:02,000\n" +
		"Hello\n" +
		"\n" +
		"2\n" +
		"00:00:02,000 --> 00:00:03,000\n" +
		"Hello\n"

	raw := Extract(content, mustCatalog(t, FormatSRT))
	out := NewFlattener().Flatten(raw)

	want := []Cue{{Index: 1, Start: ms(1000), End: ms(3000), Text: "Hello"}}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %+v, want %+v", out, want)
	}
}

func TestFlattenDropsEmptyCues(t *testing.T) {
	raw := []Cue{
		{Index: 1, Start: ms(1000), End: ms(2000), Text: "Hello"},
		{Index: 2, Start: ms(2000), End: ms(2100), Text: "   "},
		{Index: 3, Start: ms(2100), End: ms(3000), Text: "Hello"},
	}
	out := NewFlattener().Flatten(raw)

	// the empty cue vanishes and does not keep its neighbors apart: the
	// 100ms gap between them is below the near-duplicate threshold
	want := []Cue{{Index: 1, Start: ms(1000), End: ms(3000), Text: "Hello"}}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %+v, want %+v", out, want)
	}
}

func TestFlattenExactSpanMerge(t *testing.T) {
	t.Run("identical text kept once", func(t *testing.T) {
		raw := []Cue{
			{Index: 1, Start: ms(1000), End: ms(2000), Text: "Same"},
			{Index: 2, Start: ms(1000), End: ms(2000), Text: "Same"},
		}
		out := NewFlattener().Flatten(raw)
		want := []Cue{{Index: 1, Start: ms(1000), End: ms(2000), Text: "Same"}}
		if !reflect.DeepEqual(out, want) {
			t.Errorf("got %+v, want %+v", out, want)
		}
	})

	t.Run("differing text stacked", func(t *testing.T) {
		raw := []Cue{
			{Index: 1, Start: ms(1000), End: ms(2000), Text: "One"},
			{Index: 2, Start: ms(1000), End: ms(2000), Text: "Two"},
		}
		out := NewFlattener().Flatten(raw)
		want := []Cue{{Index: 1, Start: ms(1000), End: ms(2000), Text: "One\nTwo"}}
		if !reflect.DeepEqual(out, want) {
			t.Errorf("got %+v, want %+v", out, want)
		}
	})
}

func TestFlattenNearDuplicateThreshold(t *testing.T) {
	t.Run("499ms gap merges", func(t *testing.T) {
		raw := []Cue{
			{Index: 1, Start: ms(0), End: ms(1000), Text: "X"},
			{Index: 2, Start: ms(1499), End: ms(2000), Text: "X"},
		}
		out := NewFlattener().Flatten(raw)
		if len(out) != 1 {
			t.Fatalf("expected 1 cue, got %d", len(out))
		}
		if out[0].Start != ms(0) || out[0].End != ms(2000) {
			t.Errorf("bad merged span: %+v", out[0])
		}
	})

	t.Run("501ms gap stays apart", func(t *testing.T) {
		raw := []Cue{
			{Index: 1, Start: ms(0), End: ms(1000), Text: "X"},
			{Index: 2, Start: ms(1501), End: ms(2000), Text: "X"},
		}
		out := NewFlattener().Flatten(raw)
		if len(out) != 2 {
			t.Fatalf("expected 2 cues, got %d", len(out))
		}
	})

	t.Run("negative gap merges", func(t *testing.T) {
		raw := []Cue{
			{Index: 1, Start: ms(0), End: ms(1000), Text: "X"},
			{Index: 2, Start: ms(800), End: ms(2000), Text: "X"},
		}
		out := NewFlattener().Flatten(raw)
		if len(out) != 1 {
			t.Fatalf("expected 1 cue, got %d", len(out))
		}
	})
}

func TestFlattenFragmentChain(t *testing.T) {
	// four back-to-back fragments of one line need more than one round
	raw := []Cue{
		{Index: 1, Start: ms(0), End: ms(500), Text: "Line"},
		{Index: 2, Start: ms(500), End: ms(1000), Text: "Line"},
		{Index: 3, Start: ms(1000), End: ms(1500), Text: "Line"},
		{Index: 4, Start: ms(1500), End: ms(2000), Text: "Line"},
	}
	out := NewFlattener().Flatten(raw)
	want := []Cue{{Index: 1, Start: ms(0), End: ms(2000), Text: "Line"}}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %+v, want %+v", out, want)
	}
}

func TestFlattenTrailingOverlapTrim(t *testing.T) {
	raw := []Cue{
		{Index: 1, Start: ms(5000), End: ms(6000), Text: "A"},
		{Index: 2, Start: ms(1000), End: ms(2000), Text: "B"},
	}
	out := NewFlattener().Flatten(raw)
	want := []Cue{{Index: 1, Start: ms(5000), End: ms(6000), Text: "A"}}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %+v, want %+v", out, want)
	}
}

func TestFlattenSortsByStart(t *testing.T) {
	raw := []Cue{
		{Index: 1, Start: ms(4000), End: ms(5000), Text: "C"},
		{Index: 2, Start: ms(1000), End: ms(2000), Text: "A"},
		{Index: 3, Start: ms(2500), End: ms(3500), Text: "B"},
	}
	out := NewFlattener().Flatten(raw)
	if len(out) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Start < out[i-1].Start {
			t.Errorf("not sorted at %d: %+v", i, out)
		}
	}
	for i, c := range out {
		if c.Index != i+1 {
			t.Errorf("cue %d: expected index %d, got %d", i, i+1, c.Index)
		}
	}
}

func TestFlattenSanitizesText(t *testing.T) {
	raw := []Cue{
		{Index: 1, Start: ms(1000), End: ms(2000), Text: "<b>Hi</b> {pos:center}there"},
	}
	out := NewFlattener().Flatten(raw)
	if len(out) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(out))
	}
	if out[0].Text != "Hithere" {
		t.Errorf("expected %q, got %q", "Hithere", out[0].Text)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	raw := []Cue{
		{Index: 1, Start: ms(0), End: ms(1000), Text: "<i>One</i>"},
		{Index: 2, Start: ms(1000), End: ms(2000), Text: "One"},
		{Index: 3, Start: ms(2400), End: ms(3000), Text: "One"},
		{Index: 4, Start: ms(5000), End: ms(6000), Text: "Two"},
		{Index: 5, Start: ms(5000), End: ms(6000), Text: "Two"},
	}
	f := NewFlattener()
	once := f.Flatten(raw)
	twice := f.Flatten(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestFlattenDoesNotMutateInput(t *testing.T) {
	raw := []Cue{
		{Index: 9, Start: ms(1000), End: ms(2000), Text: "<b>A</b>"},
		{Index: 8, Start: ms(2000), End: ms(3000), Text: "B"},
	}
	snapshot := make([]Cue, len(raw))
	copy(snapshot, raw)

	NewFlattener().Flatten(raw)

	if !reflect.DeepEqual(raw, snapshot) {
		t.Errorf("input mutated: %+v", raw)
	}
}

func TestFlattenEmptyInput(t *testing.T) {
	out := NewFlattener().Flatten(nil)
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %+v", out)
	}
}

func TestFlattenCustomNearGap(t *testing.T) {
	f := NewFlattener()
	f.NearGap = 100 * time.Millisecond
	raw := []Cue{
		{Index: 1, Start: ms(0), End: ms(1000), Text: "X"},
		{Index: 2, Start: ms(1200), End: ms(2000), Text: "X"},
	}
	out := f.Flatten(raw)
	if len(out) != 2 {
		t.Fatalf("200ms gap should not merge under a 100ms threshold, got %d cues", len(out))
	}
}
