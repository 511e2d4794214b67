// Package worker provides the background dataset ingest job for Fareboard.
package worker

import (
	"time"
)

// IngestConfig holds configuration for the dataset ingest job.
type IngestConfig struct {
	// SourceURL is the upstream CSV to ingest.
	SourceURL string

	// Timeout is the timeout for one full ingest run.
	// Default: 5 minutes
	Timeout time.Duration

	// Interval is the scheduled ingest interval. Zero disables the
	// scheduler; the job then only runs on Pub/Sub triggers.
	Interval time.Duration

	// MinRecords is the smallest dataset the job will accept. An upstream
	// that suddenly serves fewer rows is treated as a failed run rather
	// than replacing the table with a truncated dataset.
	// Default: 1
	MinRecords int
}

// DefaultIngestConfig returns the default ingest configuration for a source.
func DefaultIngestConfig(sourceURL string) IngestConfig {
	return IngestConfig{
		SourceURL:  sourceURL,
		Timeout:    5 * time.Minute,
		Interval:   6 * time.Hour,
		MinRecords: 1,
	}
}

// withDefaults fills in zero values.
func (c IngestConfig) withDefaults() IngestConfig {
	if c.Timeout == 0 {
		c.Timeout = 5 * time.Minute
	}
	if c.MinRecords == 0 {
		c.MinRecords = 1
	}
	return c
}
