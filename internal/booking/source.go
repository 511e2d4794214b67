package booking

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Source supplies the booking dataset for a load.
type Source interface {
	// Fetch returns the full record set. Implementations make a single
	// attempt; retry policy belongs to the caller, and the dashboard load
	// deliberately has none.
	Fetch(ctx context.Context) ([]Record, error)

	// Name identifies the source in logs and ops status.
	Name() string
}

// FileSource reads the dataset from a CSV file on disk.
type FileSource struct {
	Path string
}

// Fetch implements Source.
func (s *FileSource) Fetch(_ context.Context) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("booking: open dataset file: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// Name implements Source.
func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// HTTPSource fetches the dataset from a URL with a single plain GET.
type HTTPSource struct {
	URL string

	// Client defaults to a client with a 30s timeout.
	Client *http.Client
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Record, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("booking: build dataset request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("booking: fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking: fetch dataset: unexpected status %d", resp.StatusCode)
	}

	return ParseCSV(resp.Body)
}

// Name implements Source.
func (s *HTTPSource) Name() string {
	return "http:" + s.URL
}
