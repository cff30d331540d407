package gewe

import "fmt"

// ValidationError reports input rejected before any network call.
type ValidationError struct {
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.Value, e.Reason)
}

// TransportError reports a failed network round trip (connection refused,
// timeout, TLS failure). The underlying cause is available via Unwrap.
type TransportError struct {
	Route string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gewe post %s: %v", e.Route, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not a JSON object. Snippet
// holds a bounded prefix of the offending body for diagnostics.
type DecodeError struct {
	Route   string
	Snippet string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("gewe post %s: decode response: %v (body: %s)", e.Route, e.Err, e.Snippet)
}

func (e *DecodeError) Unwrap() error { return e.Err }
