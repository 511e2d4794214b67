package worker

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fareboard/fareboard/internal/booking"
	"github.com/fareboard/fareboard/internal/resilience"
)

// Sink receives the ingested dataset. booking.PostgresRepository is the
// production implementation.
type Sink interface {
	ReplaceAll(ctx context.Context, records []booking.Record) error
}

// IngestJob fetches the upstream booking CSV and bulk-loads it into the sink.
type IngestJob struct {
	config IngestConfig
	logger zerolog.Logger
	client *resilience.Client
	sink   Sink

	metrics *IngestMetrics
}

// IngestMetrics tracks ingest job statistics.
type IngestMetrics struct {
	mu sync.RWMutex

	// Counters
	TotalRuns      int64
	SuccessfulRuns int64
	FailedRuns     int64

	// Timings
	LastRunAt       time.Time
	LastRunDuration time.Duration
	TotalDuration   time.Duration

	// Dataset stats
	LastRecordCount int
}

// IngestJobConfig holds configuration for creating an IngestJob.
type IngestJobConfig struct {
	Config IngestConfig
	Logger zerolog.Logger
	Client *resilience.Client
	Sink   Sink
}

// NewIngestJob creates a new ingest job processor.
func NewIngestJob(cfg IngestJobConfig) *IngestJob {
	client := cfg.Client
	if client == nil {
		clientCfg := resilience.DefaultClientConfig("dataset-ingest")
		client = resilience.NewClient(clientCfg)
	}

	return &IngestJob{
		config:  cfg.Config.withDefaults(),
		logger:  cfg.Logger,
		client:  client,
		sink:    cfg.Sink,
		metrics: &IngestMetrics{},
	}
}

// IngestResult contains the result of one ingest run.
type IngestResult struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Records   int
	Err       error
}

// Run executes one full ingest: fetch, parse, bulk-load.
func (j *IngestJob) Run(ctx context.Context) *IngestResult {
	startTime := time.Now()
	result := &IngestResult{StartTime: startTime}

	runCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	j.logger.Info().
		Str("source", j.config.SourceURL).
		Msg("starting dataset ingest")

	records, err := j.fetch(runCtx)
	if err == nil && len(records) < j.config.MinRecords {
		err = fmt.Errorf("upstream dataset has %d records, want at least %d",
			len(records), j.config.MinRecords)
	}
	if err == nil {
		err = j.sink.ReplaceAll(runCtx, records)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)
	result.Records = len(records)
	result.Err = err

	j.updateMetrics(result)

	if err != nil {
		j.logger.Error().Err(err).
			Dur("duration", result.Duration).
			Msg("dataset ingest failed")
	} else {
		j.logger.Info().
			Dur("duration", result.Duration).
			Int("records", result.Records).
			Msg("dataset ingest completed")
	}

	return result
}

// Check verifies that the upstream source is fetchable and parseable without
// touching the sink. Used by the health-check trigger.
func (j *IngestJob) Check(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	records, err := j.fetch(checkCtx)
	if err != nil {
		return err
	}
	if len(records) < j.config.MinRecords {
		return fmt.Errorf("upstream dataset has %d records, want at least %d",
			len(records), j.config.MinRecords)
	}
	return nil
}

// fetch downloads and parses the upstream CSV through the resilient client.
func (j *IngestJob) fetch(ctx context.Context) ([]booking.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.config.SourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building ingest request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching dataset: unexpected status %d", resp.StatusCode)
	}

	records, err := booking.ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return records, nil
}

func (j *IngestJob) updateMetrics(result *IngestResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	if result.Err != nil {
		j.metrics.FailedRuns++
	} else {
		j.metrics.SuccessfulRuns++
		j.metrics.LastRecordCount = result.Records
	}
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *IngestJob) GetMetrics() IngestMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return IngestMetrics{
		TotalRuns:       j.metrics.TotalRuns,
		SuccessfulRuns:  j.metrics.SuccessfulRuns,
		FailedRuns:      j.metrics.FailedRuns,
		LastRunAt:       j.metrics.LastRunAt,
		LastRunDuration: j.metrics.LastRunDuration,
		TotalDuration:   j.metrics.TotalDuration,
		LastRecordCount: j.metrics.LastRecordCount,
	}
}

// MetricsSnapshot returns a snapshot of the current metrics as a map.
func (j *IngestJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_runs":        m.TotalRuns,
		"successful_runs":   m.SuccessfulRuns,
		"failed_runs":       m.FailedRuns,
		"last_run_at":       m.LastRunAt,
		"last_run_duration": m.LastRunDuration.String(),
		"total_duration":    m.TotalDuration.String(),
		"last_record_count": m.LastRecordCount,
	}
}
