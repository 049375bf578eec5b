// Package app provides the orchestration layer for the remote.
//
// Run is the composition root:
//
//  1. Load connection settings from ~/.config/golibrespot/config.toml,
//     applying any flag overrides.
//  2. Build the librespot API client over a shared http.Client.
//  3. Create the state.Store the listener and UI communicate through.
//  4. Start the event-listener goroutine, which reconnects on its own.
//  5. Seed the store once from player/current so the UI has data before
//     the first event arrives.
//  6. Run the TUI until the user quits or the signal context cancels.
//
// The listener replaces polling entirely: after the seed fetch the store is
// updated only by server-pushed events.
package app
