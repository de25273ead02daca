package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkotla/subcue/internal/cue"
)

// reads a subtitle file from disk, declaring its format by extension
type File struct {
	Path string
	// Format overrides extension detection when set
	Format cue.Format
}

func (f *File) Fetch(ctx context.Context) (*cue.Source, error) {
	format := f.Format
	if format == "" {
		var err error
		format, err = FormatFromPath(f.Path)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	return &cue.Source{Format: format, Text: text}, nil
}

// FormatFromPath maps a file extension to its format tag.
func FormatFromPath(path string) (cue.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return cue.FormatSRT, nil
	case ".vtt":
		return cue.FormatVTT, nil
	case ".ttml":
		return cue.FormatTTML, nil
	case ".dfxp", ".xml":
		return cue.FormatDFXP, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", cue.ErrUnsupportedFormat, ext)
	}
}
