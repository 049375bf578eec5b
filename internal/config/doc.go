// Package config loads the remote's connection settings.
//
// Settings live in ~/.config/golibrespot/config.toml:
//
//	host = "127.0.0.1"
//	port = 24879
//	reconnect_seconds = 5
//
// A missing file and empty or invalid fields fall back to the defaults
// above, so a fresh install works against a local librespot-java daemon
// with no configuration at all. Paths with a leading ~ are expanded to the
// user's home directory.
package config
