package app

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/uvjustin/golibrespot-java/internal/state"
	"github.com/uvjustin/golibrespot-java/librespot"
)

// StartListener launches the background goroutine that feeds the store from
// the event stream. It returns immediately. The listener reconnects on its
// own; only a fatal listener error (which should not happen with this
// handler) lands in the store for the UI to display.
func StartListener(ctx context.Context, store *state.Store, client *librespot.Client, reconnectInterval time.Duration) {
	go func() {
		err := client.ListenEvents(ctx, func(event map[string]any) error {
			store.ApplyEvent(event)
			return nil
		}, reconnectInterval)
		if err != nil && !errors.Is(err, context.Canceled) {
			logrus.Errorf("event listener stopped: %v", err)
			store.SetError(err)
		}
	}()
}
