package provider

import (
	"context"

	"github.com/rkotla/subcue/internal/cue"
)

// interface for acquiring a raw subtitle payload; the controller treats
// this as an opaque asynchronous call and propagates its errors unchanged
type Provider interface {
	Fetch(ctx context.Context) (*cue.Source, error)
}

// in-memory payload, for embedding and tests
type Static struct {
	Format cue.Format
	Text   string
}

func (s *Static) Fetch(ctx context.Context) (*cue.Source, error) {
	return &cue.Source{Format: s.Format, Text: s.Text}, nil
}
