// Package state provides thread-safe state management for the remote.
//
// The Store sits between the event listener goroutine and the UI refresh
// loop: the listener folds each event-stream message into the snapshot with
// ApplyEvent, and the UI reads consistent copies with Snapshot. A RWMutex
// protects the single writer / multiple reader access pattern.
//
// ApplyEvent interprets the librespot-java event names the remote cares
// about (playback transitions, track changes, metadata, volume, session
// teardown). Events it does not recognize still update the LastEvent and
// LastUpdated bookkeeping, so the UI can show stream liveness without the
// store having to know every event kind the server might add.
package state
