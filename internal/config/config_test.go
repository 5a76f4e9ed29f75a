package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Generator.Root != "." {
		t.Errorf("default root: %q", cfg.Generator.Root)
	}
	if cfg.Generator.OutputPath != ".cursor/rules/file-structure.mdc" {
		t.Errorf("default output path: %q", cfg.Generator.OutputPath)
	}
	if cfg.Generator.MaxDepth != 10 {
		t.Errorf("default max depth: %d", cfg.Generator.MaxDepth)
	}
	if cfg.Watcher.PollInterval != 2*time.Second {
		t.Errorf("default poll interval: %v", cfg.Watcher.PollInterval)
	}
	if len(cfg.Watcher.WatchDirs) != 5 {
		t.Errorf("default watch dirs: %v", cfg.Watcher.WatchDirs)
	}
	if cfg.Watcher.GeneratorTimeout <= 0 {
		t.Error("generator timeout should be bounded by default")
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirdoc.json")
	raw := `{
		"log_level": "debug",
		"generator": {"root": "web", "max_depth": 3},
		"watcher": {"watch_dirs": ["web"]}
	}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("log level not overlaid: %q", cfg.LogLevel)
	}
	if cfg.Generator.Root != "web" || cfg.Generator.MaxDepth != 3 {
		t.Errorf("generator overlay: %+v", cfg.Generator)
	}
	if len(cfg.Watcher.WatchDirs) != 1 || cfg.Watcher.WatchDirs[0] != "web" {
		t.Errorf("watcher overlay: %v", cfg.Watcher.WatchDirs)
	}
	// Untouched fields keep their defaults.
	if cfg.Watcher.PollInterval != 2*time.Second {
		t.Errorf("poll interval should keep its default: %v", cfg.Watcher.PollInterval)
	}
	if cfg.Generator.OutputPath != ".cursor/rules/file-structure.mdc" {
		t.Errorf("output path should keep its default: %q", cfg.Generator.OutputPath)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestLoadFileEmptyPath(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("empty path should mean defaults: %v", err)
	}
	if cfg.Generator.Root != "." {
		t.Error("empty path should return defaults")
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := Load()
	cfg.History.DBPath = filepath.Join(root, "state", "history.db")
	cfg.Control.SocketPath = filepath.Join(root, "state", "watch.sock")
	cfg.Control.PIDPath = filepath.Join(root, "state", "watch.pid")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "state")); err != nil {
		t.Errorf("state dir should exist: %v", err)
	}
}
