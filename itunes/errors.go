package itunes

import (
	"errors"
	"fmt"
)

// ErrMissingResults is wrapped when a response body has no "results" array.
var ErrMissingResults = errors.New(`response has no "results" array`)

// TransportError reports a search that did not produce a usable response.
type TransportError struct {
	// Op is one of "request", "status" or "decode".
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("itunes %s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("itunes %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
