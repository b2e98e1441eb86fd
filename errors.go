package askline

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// ErrEOF is returned when the line source is exhausted before a line
	// could be delivered (e.g. the user pressed Ctrl+D, or a piped stdin ran
	// out of input).
	ErrEOF = errors.New("EOF")
	// ErrNoChoices is returned by Choose when the choice set is empty. It is
	// a configuration fault: it is reported before any prompt is written and
	// is never retryable.
	ErrNoChoices = errors.New("askline: choices must not be empty")
)

// ValidationError is the final error delivered when a candidate was rejected
// and automatic retry was disabled via WithoutRetry.
//
// The Reason field carries the validator's failure text verbatim. When the
// error was produced by an interaction that can still be continued, Retry
// performs exactly one more prompt/read/validate attempt with the original
// request, letting a caller who inspected the error decide to try again
// without rebuilding the prompt:
//
//	value, err := asker.Prompt("Port: ", askline.WithValidator(portValidator), askline.WithoutRetry())
//	var verr *askline.ValidationError
//	if errors.As(err, &verr) {
//		fmt.Println("try once more:", verr.Reason)
//		value, err = verr.Retry()
//	}
type ValidationError struct {
	// Reason is the validator's failure text, preserved verbatim.
	Reason string

	cause error
	retry func() (any, error)
}

// Error returns the rejection reason.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap exposes the validator's original error so callers can navigate the
// failure with errors.Is and errors.As.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// CanRetry reports whether Retry will perform another attempt.
func (e *ValidationError) CanRetry() bool {
	return e.retry != nil
}

// Retry re-arms the interaction for exactly one more attempt. The retry
// capability is one-shot: after the first call the error is closed and
// further calls return the error itself. If the extra attempt is rejected
// again, the returned error is a fresh ValidationError with its own retry
// capability, so manual retry loops compose.
func (e *ValidationError) Retry() (any, error) {
	if e.retry == nil {
		return nil, e
	}
	retry := e.retry
	e.retry = nil
	return retry()
}

// InvalidChoiceError reports input that did not match any allowed option. It
// is produced by Choose and Confirm and travels inside the surrounding
// ValidationError, reachable via errors.As:
//
//	_, err := asker.Choose("Color: ", colors, askline.WithoutRetry())
//	var invalid *askline.InvalidChoiceError
//	if errors.As(err, &invalid) {
//		fmt.Println("not an option:", invalid.Input)
//	}
type InvalidChoiceError struct {
	Input   string   // The rejected input
	Choices []string // The allowed options, in canonical casing
}

// Error returns a reason naming the invalid choice and the allowed options.
func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q (choose from: %s)", e.Input, strings.Join(e.Choices, ", "))
}
