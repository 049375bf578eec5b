package librespot

// Data is a passive holder for the last known player state. It is a plain
// mutable record: fields are independently settable, nothing is validated
// or cross-checked, and there is no locking. Callers typically update it
// from inside their event handler and wrap it themselves when they need
// concurrent access.
type Data struct {
	// PlayerStatus is the last known playback state, or nil when unknown.
	PlayerStatus any

	// Volume is the last known volume (0-65536), or nil when unknown.
	Volume *int

	// TrackInfo is the last known track payload, or nil when unknown.
	TrackInfo any
}

// NewData returns an empty holder.
func NewData() *Data {
	return &Data{}
}

// Name identifies the remote player implementation.
func (d *Data) Name() string {
	return "librespot-java"
}
