package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the connection settings for the librespot-java API.
type Config struct {
	Host             string
	Port             int
	ReconnectSeconds int
}

const (
	defaultConfigPath       = "~/.config/golibrespot/config.toml"
	defaultHost             = "127.0.0.1"
	defaultPort             = 24879
	defaultReconnectSeconds = 5
)

// Load locates and parses the config file, falling back to defaults when it
// is missing or leaves fields empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Host:             defaultHost,
		Port:             defaultPort,
		ReconnectSeconds: defaultReconnectSeconds,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Host             string `toml:"host"`
		Port             int    `toml:"port"`
		ReconnectSeconds int    `toml:"reconnect_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if host := strings.TrimSpace(raw.Host); host != "" {
		cfg.Host = host
	}
	if raw.Port > 0 {
		cfg.Port = raw.Port
	}
	if raw.ReconnectSeconds > 0 {
		cfg.ReconnectSeconds = raw.ReconnectSeconds
	}

	return cfg, nil
}

// ReconnectInterval returns the event-stream reconnect delay.
func (c Config) ReconnectInterval() time.Duration {
	if c.ReconnectSeconds <= 0 {
		return defaultReconnectSeconds * time.Second
	}
	return time.Duration(c.ReconnectSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
