// Package librespot provides a client for the librespot-java player API.
//
// # Overview
//
// The package exposes two collaborating pieces:
//
//   - A command client that issues one-shot POST requests to the player's
//     control endpoints (load, pause, resume, skip, volume, metadata,
//     search, token) and reports the outcome.
//   - An event listener that holds a websocket open against /events,
//     forwards each decoded message to a caller-supplied handler, and
//     reconnects forever on disconnect with a fixed delay between attempts.
//
// # Client Usage
//
// Construct a client bound to the player's address:
//
//	client := librespot.NewClient(nil, "127.0.0.1", 24879)
//
//	status, err := client.PlayerPause(ctx)
//	if err != nil {
//		log.Printf("pause failed: %v", err)
//	}
//
// Commands are independent and stateless; issue them at will, in any order,
// concurrently if desired. The shared http.Client handles connection reuse.
//
// # Status Classification
//
// The API reports session problems through three statuses that are treated
// as informational, never as errors:
//
//   - 204: no active session
//   - 500: invalid session
//   - 503: session is reconnecting
//
// Write-type commands return the raw status unchanged for every response,
// soft failure or not. Read-type commands (PlayerCurrent, Metadata, Search,
// Token) decode the response body exactly once regardless of status, since
// the server may emit a body alongside a soft-failure status.
//
// # Error Handling
//
// Connection-level failures (refused connection, DNS failure, timeout)
// surface as *TransportError with the underlying error available through
// errors.Unwrap. Commands are never retried; the single attempt's outcome
// is the caller's to interpret.
//
// # Event Stream
//
// ListenEvents runs until its context is cancelled or a fatal error occurs:
//
//	err := client.ListenEvents(ctx, func(event map[string]any) error {
//		log.Printf("event: %v", event["event"])
//		return nil
//	}, 5*time.Second)
//
// Transport failures and timeouts trigger the reconnect path. Decode
// failures and handler errors are fatal and end the listener: only
// connection-class problems are worth retrying, anything else is a defect
// the caller needs to see.
//
// # Diagnostics
//
// The client logs soft failures and connection failures through an
// injectable Logger (satisfied by logrus); SetLogger replaces the default
// logrus standard logger, which keeps test output capturable.
package librespot
