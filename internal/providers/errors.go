package providers

import (
	"errors"
	"fmt"
)

// FetchError captures a failed upstream call: a non-success status or an
// undecodable body. Fatal for the scoreboard and summary endpoints; the team
// fallback lookup degrades to a zero-value record instead.
type FetchError struct {
	Endpoint   string
	URL        string
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "remote fetch failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Endpoint, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, msg)
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
