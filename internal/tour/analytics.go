package tour

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studyloop/studyloop/internal/store"
)

// flushAttempts bounds the per-batch persistence retry. A batch that still
// fails afterwards is dropped: analytics are best-effort by contract.
const flushAttempts = 2

// EventDetail carries the action-kind specific fields of an analytics
// event. Zero values are omitted from the persisted metadata.
type EventDetail struct {
	Duration     time.Duration
	Interactions int
	ErrorCode    string
	Attempt      int
}

// Analytics batches tour events and flushes them to the event repo on size
// and on a fixed interval. Emission never blocks the caller on I/O.
type Analytics struct {
	repo      store.EventRepo
	logger    *zap.Logger
	batchSize int

	mu  sync.Mutex
	buf []store.TourEventData

	ticker *time.Ticker
	stop   chan struct{}
	done   chan struct{}
}

// NewAnalytics creates a batcher. repo may be nil, which turns emission
// into a no-op (useful in tests and degraded startup).
func NewAnalytics(repo store.EventRepo, cfg Config, logger *zap.Logger) *Analytics {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Analytics{
		repo:      repo,
		logger:    logger,
		batchSize: cfg.AnalyticsBatchSize,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	interval := cfg.AnalyticsFlushInterval
	if interval <= 0 {
		interval = DefaultConfig().AnalyticsFlushInterval
	}
	a.ticker = time.NewTicker(interval)
	go a.loop()

	return a
}

// Emit buffers one event. A full buffer triggers an asynchronous flush.
func (a *Analytics) Emit(userID string, step Step, action EventAction, detail EventDetail) {
	if a.repo == nil {
		return
	}

	meta := make(map[string]string)
	if detail.ErrorCode != "" {
		meta["error_code"] = detail.ErrorCode
	}
	if detail.Attempt > 0 {
		meta["attempt"] = strconv.Itoa(detail.Attempt)
	}

	ev := store.TourEventData{
		EventID:          uuid.NewString(),
		UserID:           userID,
		Step:             string(step),
		Action:           string(action),
		DurationMs:       detail.Duration.Milliseconds(),
		InteractionCount: detail.Interactions,
		Metadata:         meta,
	}

	a.mu.Lock()
	a.buf = append(a.buf, ev)
	full := len(a.buf) >= a.batchSize
	a.mu.Unlock()

	if full {
		go a.Flush(context.Background())
	}
}

// Flush persists all buffered events. On failure the batch is retried once
// and then dropped with a log line.
func (a *Analytics) Flush(ctx context.Context) {
	a.mu.Lock()
	batch := a.buf
	a.buf = nil
	a.mu.Unlock()

	if len(batch) == 0 || a.repo == nil {
		return
	}

	var err error
	for attempt := 0; attempt < flushAttempts; attempt++ {
		if err = a.repo.AppendTourEvents(ctx, batch); err == nil {
			return
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-time.After(200 * time.Millisecond):
			continue
		}
		break
	}

	a.logger.Warn("dropping analytics batch",
		zap.Int("events", len(batch)),
		zap.Error(err),
	)
}

// Close stops the periodic flusher and flushes the remaining buffer.
func (a *Analytics) Close() {
	select {
	case <-a.stop:
		return // already closed
	default:
	}
	close(a.stop)
	<-a.done
	a.Flush(context.Background())
}

func (a *Analytics) loop() {
	defer close(a.done)
	for {
		select {
		case <-a.ticker.C:
			a.Flush(context.Background())
		case <-a.stop:
			a.ticker.Stop()
			return
		}
	}
}
