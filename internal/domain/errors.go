package domain

import "fmt"

// UpstreamError marks a transport or auth failure from an external API
// (Reddit listing endpoint or the completion endpoint).
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// SchemaViolationError marks a completion payload that failed validation
// against the analysis function schema.
type SchemaViolationError struct {
	Reason string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("completion schema violation: %s", e.Reason)
}
