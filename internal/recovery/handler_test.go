package recovery

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestClassificationDefaults(t *testing.T) {
	h := NewHandler(nil, nil)

	tests := []struct {
		code        Code
		retryable   bool
		recoverable bool
	}{
		{CodeNetworkError, true, true},
		{CodeDatabaseError, true, true},
		{CodeActionTimeout, false, true},
		{CodeElementNotFound, true, true},
		{CodeInvalidState, false, true},
		{CodeUserCancelled, false, false},
		{CodeInitializationFailed, true, true},
		{CodeStepValidationFailed, true, true},
	}

	for _, tt := range tests {
		e := h.NewError(tt.code, "boom", Detail{})
		if e.Retryable != tt.retryable {
			t.Errorf("%s: retryable = %v, want %v", tt.code, e.Retryable, tt.retryable)
		}
		if e.Recoverable != tt.recoverable {
			t.Errorf("%s: recoverable = %v, want %v", tt.code, e.Recoverable, tt.recoverable)
		}
	}
}

func TestDetailOverridesClassification(t *testing.T) {
	h := NewHandler(nil, nil)
	yes, no := true, false

	// A normally non-retryable timeout flagged retryable by the caller.
	e := h.NewError(CodeActionTimeout, "slow element", Detail{Retryable: &yes})
	if !e.Retryable {
		t.Error("retryable override ignored")
	}
	if !e.Recoverable {
		t.Error("recoverable default lost when only retryable is overridden")
	}

	// A normally recoverable network error marked terminal.
	e = h.NewError(CodeNetworkError, "offline", Detail{Recoverable: &no})
	if e.Recoverable {
		t.Error("recoverable override ignored")
	}
	if !e.Retryable {
		t.Error("retryable default lost when only recoverable is overridden")
	}

	// Overrides apply to unknown codes too.
	e = h.NewError(Code("quantum_flux"), "??", Detail{Recoverable: &no, Retryable: &yes})
	if e.Recoverable || !e.Retryable {
		t.Errorf("unknown code overrides: recoverable=%v retryable=%v, want false/true",
			e.Recoverable, e.Retryable)
	}
}

func TestHandleKnownCodes(t *testing.T) {
	h := NewHandler(nil, nil)

	res := h.Handle(h.NewError(CodeActionTimeout, "no action detected", Detail{Step: "task_creation"}))
	if res.ShouldRetry {
		t.Error("timeout must not be retried by the handler")
	}
	if !res.ShouldRecover {
		t.Error("timeout must be recoverable")
	}
	if res.Recovery != ActionOfferSkip {
		t.Errorf("recovery = %q, want offer_skip", res.Recovery)
	}
	if res.UserMessage == "" {
		t.Error("expected a user message")
	}

	res = h.Handle(h.NewError(CodeUserCancelled, "closed", Detail{}))
	if res.ShouldRetry || res.ShouldRecover {
		t.Error("user cancellation is terminal")
	}
}

func TestHandleUnknownCodeFallsBack(t *testing.T) {
	h := NewHandler(nil, nil)

	e := h.NewError(Code("quantum_flux"), "??", Detail{})
	res := h.Handle(e)
	if res.ShouldRetry {
		t.Error("unknown codes default to non-retryable")
	}
	if !res.ShouldRecover {
		t.Error("unknown codes default to recoverable")
	}
	if res.UserMessage != genericUserMessage {
		t.Errorf("user message = %q, want generic fallback", res.UserMessage)
	}
}

func TestUserMessagesAreNotTechnical(t *testing.T) {
	h := NewHandler(nil, nil)
	for code := range classifications {
		res := h.Handle(&Error{Code: code})
		for _, forbidden := range []string{"error", "Error", "nil", "exception", "stack"} {
			if res.UserMessage == "" {
				t.Errorf("%s: empty user message", code)
				break
			}
			if containsWord(res.UserMessage, forbidden) {
				t.Errorf("%s: user message %q leaks technical term %q", code, res.UserMessage, forbidden)
			}
		}
	}
}

func containsWord(s, w string) bool {
	for i := 0; i+len(w) <= len(s); i++ {
		if s[i:i+len(w)] == w {
			return true
		}
	}
	return false
}

func TestHistoryBounded(t *testing.T) {
	h := NewHandler(nil, nil)

	for i := 0; i < MaxHistory+10; i++ {
		h.NewError(CodeNetworkError, fmt.Sprintf("err %d", i), Detail{})
	}

	hist := h.History()
	if len(hist) != MaxHistory {
		t.Fatalf("history length = %d, want %d", len(hist), MaxHistory)
	}
	// Oldest entries evicted: the first retained message is err 10.
	if hist[0].Message != "err 10" {
		t.Errorf("oldest retained = %q, want err 10", hist[0].Message)
	}
}

func TestStats(t *testing.T) {
	h := NewHandler(nil, nil)

	h.NewError(CodeNetworkError, "a", Detail{})
	h.NewError(CodeDatabaseError, "b", Detail{})
	h.NewError(CodeDatabaseError, "c", Detail{})

	st := h.Stats()
	if st.Total != 3 {
		t.Errorf("total = %d, want 3", st.Total)
	}
	if st.ByCode[CodeDatabaseError] != 2 {
		t.Errorf("database_error count = %d, want 2", st.ByCode[CodeDatabaseError])
	}
	if st.MostFrequent != CodeDatabaseError {
		t.Errorf("most frequent = %s, want database_error", st.MostFrequent)
	}
}

// blockingReporter records reports and never errors.
type blockingReporter struct {
	mu    sync.Mutex
	codes []Code
	done  chan struct{}
}

func (r *blockingReporter) ReportError(_ context.Context, e *Error) error {
	r.mu.Lock()
	r.codes = append(r.codes, e.Code)
	r.mu.Unlock()
	select {
	case r.done <- struct{}{}:
	default:
	}
	return nil
}

func TestReporterReceivesErrors(t *testing.T) {
	rep := &blockingReporter{done: make(chan struct{}, 1)}
	h := NewHandler(rep, nil)

	h.NewError(CodeActionTimeout, "x", Detail{Step: "welcome"})

	select {
	case <-rep.done:
	case <-time.After(2 * time.Second):
		t.Fatal("reporter was never called")
	}

	rep.mu.Lock()
	defer rep.mu.Unlock()
	if len(rep.codes) != 1 || rep.codes[0] != CodeActionTimeout {
		t.Errorf("reported = %v, want [action_timeout]", rep.codes)
	}
}
