package core

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/rosterdiff/internal/logging"
)

// DefaultDiffTimeout bounds a single diff when no timeout is configured.
const DefaultDiffTimeout = 2 * time.Minute

// ServiceConfig holds the limits applied by a Service.
type ServiceConfig struct {
	MaxConcurrent int           // Diffs evaluated at once
	MaxWait       time.Duration // Wait for a free slot before ErrTooManyDiffs
	Timeout       time.Duration // Upper bound on one diff
}

// Service runs diffs on behalf of a transport. It adds a diff ID, logging,
// a timeout and a concurrency bound around Diff.
type Service struct {
	limiter *DiffLimiter
	timeout time.Duration
}

// DiffResult is a completed diff.
type DiffResult struct {
	ID       string
	Report   *Report
	Duration time.Duration
}

// NewService creates a new Service instance.
func NewService(cfg ServiceConfig) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultDiffTimeout
	}
	return &Service{
		limiter: NewDiffLimiter(cfg.MaxConcurrent, cfg.MaxWait),
		timeout: timeout,
	}
}

// Diff compares the two exports. The returned result carries the diff ID
// even when err is non-nil, so callers can quote it.
func (s *Service) Diff(ctx context.Context, extranetCSV, operooXLS []byte) (*DiffResult, error) {
	res := &DiffResult{ID: uuid.NewString()}
	log := logging.WithFields(ctx,
		"diff_id", res.ID,
		"extranet_bytes", len(extranetCSV),
		"operoo_bytes", len(operooXLS),
	)

	if err := s.limiter.Acquire(ctx); err != nil {
		log.Warn("diff rejected", "error", err)
		return res, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type outcome struct {
		report *Report
		err    error
	}
	done := make(chan outcome, 1)
	start := time.Now()

	// The slot is held until the diff itself returns, even if the caller
	// gives up first.
	go func() {
		defer s.limiter.Release()
		report, err := Diff(extranetCSV, operooXLS)
		done <- outcome{report, err}
	}()

	select {
	case out := <-done:
		res.Duration = time.Since(start)
		if out.err != nil {
			log.Info("diff failed", "error", out.err, "duration", res.Duration)
			return res, out.err
		}
		res.Report = out.report
		log.Info("diff completed",
			"tables", out.report.Len(),
			"rows", out.report.Rows(),
			"duration", res.Duration,
		)
		return res, nil

	case <-ctx.Done():
		res.Duration = time.Since(start)
		log.Warn("diff abandoned", "error", ctx.Err(), "duration", res.Duration)
		return res, ctx.Err()
	}
}

// Status returns the current diff limiter state.
func (s *Service) Status() LimiterStatus {
	return s.limiter.Status()
}

// WaitForDiffs blocks until in-flight diffs finish or ctx is done.
// Used during graceful shutdown.
func (s *Service) WaitForDiffs(ctx context.Context) error {
	return s.limiter.Drain(ctx)
}
