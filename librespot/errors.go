package librespot

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportError reports a connection-level failure: refused connection,
// DNS failure, timeout, or a stream-level I/O error. Status codes returned
// by the server are never wrapped in a TransportError; they reach the
// caller unchanged.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// isTransient reports whether err belongs to the closed set of failure
// kinds the event listener retries: transport failures and timeouts.
// Anything else (decode failures, handler errors) is fatal to the listener.
func isTransient(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
