package librespot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coder/websocket"
)

// EventHandler receives one decoded event at a time. The listener waits for
// the handler to return before reading the next message, so invocations for
// a single listener never overlap. A non-nil error stops the listener.
type EventHandler func(event map[string]any) error

// ListenEvents subscribes to the server's event stream and delivers every
// message to handler. It reconnects forever on disconnect or connect
// failure, sleeping reconnectInterval between attempts with no backoff
// growth and no attempt cap.
//
// Only transport failures and timeouts take the reconnect path. A JSON
// decode failure or a handler error ends the listener and is returned.
// Cancelling ctx ends the listener with ctx.Err(), including mid-sleep.
//
// Run exactly one listener per target; two concurrent listeners deliver
// duplicates with no coordination.
func (c *Client) ListenEvents(ctx context.Context, handler EventHandler, reconnectInterval time.Duration) error {
	c.logger.Debugf("Starting event listener")
	eventsURL := c.baseURL + "/events"

	for {
		err := c.streamEvents(ctx, eventsURL, handler)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		switch {
		case err == nil:
			c.logger.Debugf("Event stream disconnected, will retry in %s.", reconnectInterval)
		case isTransient(err):
			c.logger.Errorf("Can not connect to event stream at %s, will retry in %s: %v",
				eventsURL, reconnectInterval, err)
		default:
			return err
		}
		if err := sleep(ctx, reconnectInterval); err != nil {
			return err
		}
	}
}

// streamEvents opens one websocket connection and pumps messages until the
// stream ends. A clean peer close returns nil; transport failures return a
// *TransportError; decode and handler failures return as-is.
func (c *Client) streamEvents(ctx context.Context, eventsURL string, handler EventHandler) error {
	// http.Client.Timeout would cut the stream off mid-flight, and the
	// websocket dialer rejects it outright; cancellation for the stream
	// comes from ctx instead.
	httpClient := c.http
	if httpClient.Timeout > 0 {
		clone := *httpClient
		clone.Timeout = 0
		httpClient = &clone
	}
	conn, _, err := websocket.Dial(ctx, eventsURL, &websocket.DialOptions{
		HTTPClient: httpClient,
	})
	if err != nil {
		return &TransportError{URL: eventsURL, Err: err}
	}
	defer conn.CloseNow()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return &TransportError{URL: eventsURL, Err: err}
		}

		var event map[string]any
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("decode event: %w", err)
		}
		c.logger.Debugf("Message received: %v", event)

		if err := handler(event); err != nil {
			return err
		}
	}
}

// sleep waits for d, returning early with ctx.Err() when ctx is cancelled so
// shutdown is never delayed by a pending reconnect wait.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
