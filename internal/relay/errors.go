package relay

import "fmt"

const (
	MessageGenericFailure = "Oops! There was a problem submitting your form"
	MessageLocalFile      = "This page was opened directly from a file, so the form cannot be sent. " +
		"Please run a local server (for example `watss-forms serve`) and open the page over http://localhost."
)

// ServerError is a non-2xx reply from the relay endpoint.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// NetworkError means the request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return MessageGenericFailure
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// EnvironmentError means the page runs from a local file, not over HTTP.
type EnvironmentError struct {
	Origin string
	Err    error
}

func (e *EnvironmentError) Error() string {
	return MessageLocalFile
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

func (e *EnvironmentError) Detail() string {
	return fmt.Sprintf("origin %q cannot reach the relay: %v", e.Origin, e.Err)
}
