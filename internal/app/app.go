package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/uvjustin/golibrespot-java/internal/config"
	"github.com/uvjustin/golibrespot-java/internal/state"
	"github.com/uvjustin/golibrespot-java/internal/ui"
	"github.com/uvjustin/golibrespot-java/librespot"
)

// Options configure the remote.
type Options struct {
	ConfigPath       string
	Host             string // overrides config when non-empty
	Port             int    // overrides config when positive
	ReconnectSeconds int    // overrides config when positive
}

const requestTimeout = 5 * time.Second

// Run boots the remote-control TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Host != "" {
		cfg.Host = opts.Host
	}
	if opts.Port > 0 {
		cfg.Port = opts.Port
	}
	if opts.ReconnectSeconds > 0 {
		cfg.ReconnectSeconds = opts.ReconnectSeconds
	}

	httpClient := &http.Client{Timeout: requestTimeout}
	client := librespot.NewClient(httpClient, cfg.Host, cfg.Port)

	store := &state.Store{}

	// The listener owns keeping the store fresh; a single seed fetch fills
	// it before the first event arrives.
	StartListener(ctx, store, client, cfg.ReconnectInterval())
	seed(ctx, store, client)

	return ui.Run(ui.Options{
		Context: ctx,
		Client:  client,
		Store:   store,
	})
}

// seed fills the store from player/current. With no active session the API
// answers 204 with an empty body, which surfaces as a decode error here;
// that is the normal idle case, not a fault.
func seed(ctx context.Context, store *state.Store, client *librespot.Client) {
	body, err := client.PlayerCurrent(ctx)
	if err != nil {
		logrus.Debugf("initial player/current fetch skipped: %v", err)
		return
	}
	store.ApplyCurrent(body)
}
