package recovery

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MaxHistory is the number of recent errors retained for diagnostics.
const MaxHistory = 50

// Action names the recovery move the caller should make after a failure.
type Action string

const (
	ActionNone       Action = ""
	ActionWait       Action = "wait"       // pause, then retry the operation
	ActionRescan     Action = "rescan"     // wait for the UI to settle, re-run detection
	ActionOfferSkip  Action = "offer_skip" // unblock the user via the skip path
	ActionResetStep  Action = "reset_step" // reset to the last known-good step
	ActionRetryInit  Action = "retry_init" // clear cached state and re-initialize
	ActionRevalidate Action = "revalidate" // re-run the completion predicate
)

// Resolution is the policy verdict for a handled error.
type Resolution struct {
	ShouldRetry   bool
	ShouldRecover bool
	UserMessage   string
	Recovery      Action
}

// classification is one row of the fixed taxonomy table.
type classification struct {
	retryable   bool
	recoverable bool
	userMessage string
	recovery    Action
}

// Messages shown to users are deliberately reassuring and non-technical.
var classifications = map[Code]classification{
	CodeNetworkError: {
		retryable: true, recoverable: true,
		userMessage: "Having trouble connecting. We'll keep trying in the background.",
		recovery:    ActionWait,
	},
	CodeDatabaseError: {
		retryable: true, recoverable: true,
		userMessage: "Couldn't save your progress just now. Retrying shortly.",
		recovery:    ActionWait,
	},
	CodeActionTimeout: {
		retryable: false, recoverable: true,
		userMessage: "No rush! You can also skip this step and come back later.",
		recovery:    ActionOfferSkip,
	},
	CodeElementNotFound: {
		retryable: true, recoverable: true,
		userMessage: "One moment while things finish loading.",
		recovery:    ActionRescan,
	},
	CodeInvalidState: {
		retryable: false, recoverable: true,
		userMessage: "Let's pick the tour back up from where you left off.",
		recovery:    ActionResetStep,
	},
	CodeUserCancelled: {
		retryable: false, recoverable: false,
		userMessage: "Tour closed. You can restart it anytime from the menu.",
		recovery:    ActionNone,
	},
	CodeInitializationFailed: {
		retryable: true, recoverable: true,
		userMessage: "Getting things ready took longer than expected. Trying again.",
		recovery:    ActionRetryInit,
	},
	CodeStepValidationFailed: {
		retryable: true, recoverable: true,
		userMessage: "Almost there — checking that step one more time.",
		recovery:    ActionRevalidate,
	},
}

const genericUserMessage = "Something didn't go as planned, but you can keep going."

// Reporter receives errors for best-effort external recording. Failures to
// report are swallowed; reporting must never block recovery.
type Reporter interface {
	ReportError(ctx context.Context, e *Error) error
}

// Handler builds classified errors, decides recovery policy and retains a
// bounded history. Safe for concurrent use.
type Handler struct {
	reporter Reporter
	logger   *zap.Logger

	mu      sync.Mutex
	history []*Error
}

// NewHandler creates a Handler. reporter may be nil (no external
// reporting); logger may be nil (no diagnostics logging).
func NewHandler(reporter Reporter, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{reporter: reporter, logger: logger}
}

// NewError builds a classified Error, records it in history and reports it
// to the external sink without blocking.
func (h *Handler) NewError(code Code, message string, detail Detail) *Error {
	cls, known := classifications[code]

	e := &Error{
		Code:        code,
		Message:     message,
		Step:        detail.Step,
		Action:      detail.Action,
		Recoverable: cls.recoverable,
		Retryable:   cls.retryable,
		Timestamp:   time.Now(),
		Meta:        detail.Meta,
		Cause:       detail.Cause,
	}
	if !known {
		// Unknown codes default to non-retryable but recoverable.
		e.Recoverable = true
	}
	if detail.Recoverable != nil {
		e.Recoverable = *detail.Recoverable
	}
	if detail.Retryable != nil {
		e.Retryable = *detail.Retryable
	}

	h.record(e)

	h.logger.Warn("tour error",
		zap.String("code", string(code)),
		zap.String("step", e.Step),
		zap.String("action", e.Action),
		zap.String("message", message),
	)

	if h.reporter != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			// Best-effort: a failed report is dropped.
			_ = h.reporter.ReportError(ctx, e)
		}()
	}

	return e
}

// Handle maps an error to its recovery policy.
func (h *Handler) Handle(e *Error) Resolution {
	cls, known := classifications[e.Code]
	if !known {
		return Resolution{
			ShouldRetry:   e.Retryable,
			ShouldRecover: e.Recoverable,
			UserMessage:   genericUserMessage,
		}
	}
	return Resolution{
		ShouldRetry:   cls.retryable,
		ShouldRecover: cls.recoverable,
		UserMessage:   cls.userMessage,
		Recovery:      cls.recovery,
	}
}

// record appends e to history, evicting the oldest entry beyond MaxHistory.
func (h *Handler) record(e *Error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.history = append(h.history, e)
	if len(h.history) > MaxHistory {
		h.history = h.history[len(h.history)-MaxHistory:]
	}
}

// History returns a copy of the retained errors, oldest first.
func (h *Handler) History() []*Error {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Error, len(h.history))
	copy(out, h.history)
	return out
}

// Stats summarizes the retained history for diagnostics.
type Stats struct {
	Total        int
	ByCode       map[Code]int
	MostFrequent Code
}

// Stats counts retained errors by code and identifies the most frequent.
func (h *Handler) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := Stats{ByCode: make(map[Code]int)}
	st.Total = len(h.history)
	for _, e := range h.history {
		st.ByCode[e.Code]++
	}

	best := 0
	for code, n := range st.ByCode {
		if n > best {
			best = n
			st.MostFrequent = code
		}
	}
	return st
}
