package tour

import "time"

// Config holds engine-wide settings. Templates and variants may override
// individual fields per user.
type Config struct {
	// DetectionTimeout bounds one action-detection attempt when a step's
	// DetectionConfig doesn't set its own.
	DetectionTimeout time.Duration

	// DetectionRetries is the default re-arm count after a timeout.
	DetectionRetries int

	// FetchAttempts bounds the progress-fetch retry loop.
	FetchAttempts int

	// FetchBackoffInitial / FetchBackoffMax / FetchBackoffMultiplier shape
	// the exponential backoff between fetch attempts.
	FetchBackoffInitial    time.Duration
	FetchBackoffMax        time.Duration
	FetchBackoffMultiplier float64

	// AnalyticsBatchSize triggers a flush when the buffer reaches it.
	AnalyticsBatchSize int

	// AnalyticsFlushInterval triggers periodic flushes regardless of size.
	AnalyticsFlushInterval time.Duration
}

// DefaultConfig returns sensible defaults for the tour engine.
func DefaultConfig() Config {
	return Config{
		DetectionTimeout:       10 * time.Second,
		DetectionRetries:       2,
		FetchAttempts:          3,
		FetchBackoffInitial:    100 * time.Millisecond,
		FetchBackoffMax:        2 * time.Second,
		FetchBackoffMultiplier: 2.0,
		AnalyticsBatchSize:     10,
		AnalyticsFlushInterval: 5 * time.Second,
	}
}
