// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables a clear distinction between startup
// failures (fatal) and per-statement failures (recoverable, shell keeps running).
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// InvalidArgs indicates bad startup arguments; fatal before the shell starts.
	InvalidArgs Kind = "invalid_args"
	// SpawnFailed indicates the wrangler process could not be started.
	SpawnFailed Kind = "spawn_failed"
	// ToolFailed indicates wrangler exited with a nonzero status.
	ToolFailed Kind = "tool_failed"
	// BadResponse indicates wrangler produced output that is not valid JSON.
	BadResponse Kind = "bad_response"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
