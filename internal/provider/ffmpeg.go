package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/rkotla/subcue/internal/cue"
)

// extracts a subtitle stream from a media container via ffmpeg and wraps
// it as a SubRip source
type Media struct {
	Path string
	// StreamIndex selects which subtitle stream to pull (0 = first)
	StreamIndex int
	// TempDir defaults to the system temp directory
	TempDir string
}

func (m *Media) Fetch(ctx context.Context) (*cue.Source, error) {
	if _, err := os.Stat(m.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", m.Path)
	}

	tempDir, err := os.MkdirTemp(m.TempDir, "subcue-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	outputPath := filepath.Join(tempDir, "subtitles.srt")

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", m.StreamIndex),
		"f":   "srt",
	}

	err = ffmpeg.Input(m.Path).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg subtitle extraction failed: %w", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read extracted subtitles: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	return &cue.Source{Format: cue.FormatSRT, Text: text}, nil
}
