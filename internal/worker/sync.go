// Package worker runs the periodic connector sync: on every tick it pulls
// the current day's campaign data from each configured platform and feeds
// every payload through validation and persistence.
package worker

import (
	"context"
	"log/slog"
	"time"

	"dataguard/internal/core/port"
	"dataguard/internal/metrics"
)

// SyncWorker periodically fetches records from all connectors and runs
// them through the validator. One platform failing never stops the others;
// the failure is logged and counted and the loop moves on.
type SyncWorker struct {
	svc        port.Validator
	connectors []port.Connector
	logger     *slog.Logger
	interval   time.Duration
}

// NewSyncWorker creates a worker. Interval must be positive.
func NewSyncWorker(svc port.Validator, connectors []port.Connector, logger *slog.Logger, interval time.Duration) *SyncWorker {
	return &SyncWorker{svc: svc, connectors: connectors, logger: logger, interval: interval}
}

// Run performs one sync immediately and then one per interval until ctx is
// cancelled. It blocks; callers start it in its own goroutine.
func (w *SyncWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.syncOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.syncOnce(ctx)
		}
	}
}

// syncOnce pulls the current day from every connector.
func (w *SyncWorker) syncOnce(ctx context.Context) {
	day := time.Now().UTC()
	for _, c := range w.connectors {
		source := c.Platform()

		payloads, err := c.FetchDay(ctx, day)
		if err != nil {
			metrics.SyncRunsTotal.WithLabelValues(source, "error").Inc()
			w.logger.Error("connector fetch failed",
				slog.String("source", source), slog.Any("error", err))
			continue
		}

		anyPayloads := make([]any, len(payloads))
		for i, p := range payloads {
			anyPayloads[i] = p
		}
		reports, err := w.svc.ValidateBatch(ctx, anyPayloads)
		if err != nil {
			metrics.SyncRunsTotal.WithLabelValues(source, "error").Inc()
			w.logger.Error("sync batch failed",
				slog.String("source", source), slog.Any("error", err))
			continue
		}

		valid := 0
		for _, rep := range reports {
			if rep.Valid {
				valid++
			}
		}
		metrics.SyncRunsTotal.WithLabelValues(source, "ok").Inc()
		w.logger.Info("sync completed",
			slog.String("source", source),
			slog.Int("records", len(reports)),
			slog.Int("valid", valid),
			slog.Int("rejected", len(reports)-valid),
		)
	}
}
