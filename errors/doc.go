// Package errors provides standardized error handling patterns for SignalKit.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// The wiring core itself never logs and reports most failures as boolean
// returns or defined non-errors (silent drops on the checked dispatch path).
// This package serves the layers around the core: the named owner registry,
// the configuration loader, and the metrics registry, which report real
// errors with context.
//
// # Error Classification
//
//   - Transient: name lookups that may succeed later (ErrAbsentEndpoint,
//     ErrNotRegistered) - retry after the endpoint registers
//   - Invalid: malformed wiring configuration, duplicate registrations,
//     operations on closed objects - do not retry
//   - Fatal: programmer errors such as draining an empty queue without
//     checking emptiness (ErrEmptyQueue) - stop processing
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() function adds context without forcing a class.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
//	if errors.Is(err, errors.ErrDuplicateName) {
//	    // Owner registration conflict
//	}
//
// Classification is preserved through error chains.
package errors
