package state

import (
	"sync"
	"time"
)

// fullVolume is the server's maximum volume. volumeChanged events carry the
// volume as a 0-1 fraction of this value.
const fullVolume = 65536

// Track holds the fields the UI displays for the current track.
type Track struct {
	URI    string
	Name   string
	Artist string
	Album  string
}

// Snapshot is the latest player state available to the UI.
type Snapshot struct {
	PlayerStatus string // playing, paused, stopped, inactive; empty when unknown
	Volume       int
	HasVolume    bool
	Track        Track
	HasTrack     bool
	Connected    bool // daemon's upstream connection, from connection events
	LastEvent    string
	LastUpdated  time.Time
	LastError    error
}

// Store coordinates concurrent updates between the event listener and the
// UI refresh loop.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// ApplyEvent folds one event-stream message into the snapshot. Unknown
// event names only update the LastEvent bookkeeping.
func (s *Store) ApplyEvent(event map[string]any) {
	name, _ := event["event"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastEvent = name
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.LastError = nil

	switch name {
	case "playbackPaused":
		s.snapshot.PlayerStatus = "paused"
	case "playbackResumed":
		s.snapshot.PlayerStatus = "playing"
	case "playbackEnded":
		s.snapshot.PlayerStatus = "stopped"
	case "inactiveSession":
		s.snapshot.PlayerStatus = "inactive"
	case "connectionEstablished":
		s.snapshot.Connected = true
	case "sessionCleared", "connectionDropped":
		s.snapshot.PlayerStatus = ""
		s.snapshot.HasTrack = false
		s.snapshot.HasVolume = false
		s.snapshot.Connected = false
	case "trackChanged":
		if uri, ok := event["uri"].(string); ok {
			if s.snapshot.Track.URI != uri {
				// Metadata for the previous track no longer applies.
				s.snapshot.Track = Track{URI: uri}
			}
			s.snapshot.HasTrack = true
		}
	case "metadataAvailable":
		if track, ok := event["track"].(map[string]any); ok {
			s.snapshot.Track = parseTrack(track)
			s.snapshot.HasTrack = true
		}
	case "volumeChanged":
		if volume, ok := volumeFromEvent(event["value"]); ok {
			s.snapshot.Volume = volume
			s.snapshot.HasVolume = true
		}
	}
}

// ApplyCurrent seeds the snapshot from a player/current response body.
func (s *Store) ApplyCurrent(body map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	s.snapshot.LastError = nil

	if track, ok := body["track"].(map[string]any); ok {
		s.snapshot.Track = parseTrack(track)
		s.snapshot.HasTrack = true
	}
}

// SetError records a failure for visibility; existing player data is kept.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// parseTrack pulls display fields out of a librespot-java track payload.
// Missing or differently-shaped fields are simply left empty; the event
// schema is not enforced anywhere in the stream.
func parseTrack(track map[string]any) Track {
	parsed := Track{}
	if uri, ok := track["uri"].(string); ok {
		parsed.URI = uri
	}
	if name, ok := track["name"].(string); ok {
		parsed.Name = name
	}
	if artists, ok := track["artist"].([]any); ok && len(artists) > 0 {
		if artist, ok := artists[0].(map[string]any); ok {
			parsed.Artist, _ = artist["name"].(string)
		}
	}
	if album, ok := track["album"].(map[string]any); ok {
		parsed.Album, _ = album["name"].(string)
	}
	return parsed
}

// volumeFromEvent converts the event's volume value to the 0-65536 scale.
// The server sends a 0-1 fraction; absolute values are accepted as well.
func volumeFromEvent(value any) (int, bool) {
	v, ok := value.(float64)
	if ok {
		if v <= 1.0 {
			return int(v*fullVolume + 0.5), true
		}
		return int(v + 0.5), true
	}
	return 0, false
}
