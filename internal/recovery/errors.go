// Package recovery classifies tour failures into a fixed taxonomy and maps
// them to recovery policies. It also keeps a bounded diagnostic history.
package recovery

import (
	"fmt"
	"time"
)

// Code identifies a failure class. The taxonomy is closed: codes outside
// this set fall back to a generic policy.
type Code string

const (
	CodeNetworkError         Code = "network_error"
	CodeDatabaseError        Code = "database_error"
	CodeActionTimeout        Code = "action_timeout"
	CodeElementNotFound      Code = "element_not_found"
	CodeInvalidState         Code = "invalid_state"
	CodeUserCancelled        Code = "user_cancelled"
	CodeInitializationFailed Code = "initialization_failed"
	CodeStepValidationFailed Code = "step_validation_failed"
)

// Error is a classified tour failure. Recoverable and Retryable default
// from the code's classification but can be overridden via Detail.
type Error struct {
	Code        Code
	Message     string
	Step        string
	Action      string
	Recoverable bool
	Retryable   bool
	Timestamp   time.Time
	Meta        map[string]string
	Cause       error
}

// Detail carries optional context attached at creation time. Recoverable
// and Retryable, when set, override the code's classification defaults.
type Detail struct {
	Step        string
	Action      string
	Meta        map[string]string
	Cause       error
	Recoverable *bool
	Retryable   *bool
}

func (e *Error) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s (step %s): %s", e.Code, e.Step, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }
