package watcher

import "time"

type Config struct {
	WatchDirs        []string      `json:"watch_dirs"`
	PollInterval     time.Duration `json:"poll_interval"`
	PruneDirs        []string      `json:"prune_dirs"`
	GeneratorCommand string        `json:"generator_command"`
	GeneratorTimeout time.Duration `json:"generator_timeout"`
}

func DefaultConfig() Config {
	return Config{
		WatchDirs:        []string{"src", "api", "config", "docs", "public"},
		PollInterval:     2 * time.Second,
		PruneDirs:        []string{"node_modules", ".git", "dist", "build"},
		GeneratorCommand: "dirdoc",
		GeneratorTimeout: 30 * time.Second,
	}
}
