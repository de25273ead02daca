package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rkotla/subcue/internal/cue"
)

// fetches a subtitle payload over HTTP
type URL struct {
	URL string
	// Format overrides detection from the URL path when set
	Format cue.Format
	// Client defaults to http.DefaultClient
	Client *http.Client
}

func (u *URL) Fetch(ctx context.Context) (*cue.Source, error) {
	format := u.Format
	if format == "" {
		parsed, err := url.Parse(u.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid subtitle URL: %w", err)
		}
		format, err = FormatFromPath(parsed.Path)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := u.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subtitle: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subtitle fetch returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle body: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	return &cue.Source{Format: format, Text: text}, nil
}
