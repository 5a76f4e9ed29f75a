package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alucardeht/dirdoc/internal/control"
	"github.com/alucardeht/dirdoc/internal/generator"
	"github.com/alucardeht/dirdoc/internal/history"
	"github.com/alucardeht/dirdoc/internal/watcher"
)

type Config struct {
	LogLevel  string           `json:"log_level"`
	LogFormat string           `json:"log_format"`
	Generator generator.Config `json:"generator"`
	Watcher   watcher.Config   `json:"watcher"`
	History   history.Config   `json:"history"`
	Control   control.Config   `json:"control"`
}

// Load returns the default configuration. The defaults reproduce the
// zero-argument behavior of both executables.
func Load() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Generator: generator.DefaultConfig(),
		Watcher:   watcher.DefaultConfig(),
		History:   history.DefaultConfig(),
		Control:   control.DefaultConfig(),
	}
}

// LoadFile overlays a JSON config file on top of the defaults. An empty
// path means defaults only.
func LoadFile(path string) (*Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// EnsureDirectories creates the watcher state directories (history db,
// control socket, pidfile).
func (c *Config) EnsureDirectories() error {
	dirs := map[string]bool{}
	if c.History.Enabled {
		dirs[filepath.Dir(c.History.DBPath)] = true
	}
	dirs[filepath.Dir(c.Control.SocketPath)] = true
	dirs[filepath.Dir(c.Control.PIDPath)] = true

	for dir := range dirs {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	return nil
}
