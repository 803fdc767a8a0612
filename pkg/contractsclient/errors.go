package contractsclient

import "fmt"

// ValidationError is raised before any request leaves the process: the caller
// handed us input the server would reject anyway.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RemoteError is any non-2xx answer from the service. Code and Message come
// from the JSON error body; Message falls back to a generic text when the body
// has none.
type RemoteError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// IsInvalidTransition reports whether the server rejected a lifecycle action
// attempted outside its guarded state. Such a rejection is never retryable.
func (e *RemoteError) IsInvalidTransition() bool {
	return e.Code == "INVALID_TRANSITION"
}

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
