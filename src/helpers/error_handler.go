package helpers

import (
	"fmt"
	"time"

	"contract-observer/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type ContractObserverError struct {
	Message string
	Cause   error
}

func (e *ContractObserverError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ContractObserverError) Unwrap() error {
	return e.Cause
}

// Distinct error types for type assertions at the boundary
type ConfigurationError struct{ ContractObserverError }
type DatabaseError struct{ ContractObserverError }
type IngestError struct{ ContractObserverError }

// ValidationError marks a bad argument from the caller (e.g. an unknown
// aggregation dimension). Surfaced immediately rather than degraded.
type ValidationError struct{ ContractObserverError }

// -----------------------------------------------------------------------------

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{ContractObserverError{Message: fmt.Sprintf(format, args...)}}
}

// -----------------------------------------------------------------------------

// NewIngestError wraps a data-load failure with its cause.
func NewIngestError(message string, cause error) *IngestError {
	return &IngestError{ContractObserverError{Message: message, Cause: cause}}
}

// -----------------------------------------------------------------------------
// Retry Logic
// -----------------------------------------------------------------------------

// RetryWithBackoff attempts to execute the operation up to maxRetries times with exponential backoff.
func RetryWithBackoff(log *logger.Logger, operation string, maxRetries int, baseDelay time.Duration, fn func() (interface{}, error)) (interface{}, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		res, err := fn()
		if err == nil {
			return res, nil
		}

		lastErr = err
		if attempt == maxRetries-1 {
			break
		}

		delay := baseDelay * (1 << attempt)
		log.Warning("Attempt %d/%d failed for %s: %v. Retrying in %v", attempt+1, maxRetries, operation, err, delay)
		time.Sleep(delay)
	}

	return nil, lastErr
}
