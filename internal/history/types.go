package history

import "time"

const (
	ReasonManual = "manual"
	ReasonChange = "change"

	StatusOK    = "ok"
	StatusError = "error"
)

type Config struct {
	Enabled bool   `json:"enabled"`
	DBPath  string `json:"db_path"`
}

func DefaultConfig() Config {
	return Config{
		Enabled: true,
		DBPath:  ".dirdoc/history.db",
	}
}

// Run is one recorded regeneration. Only run outcomes are persisted;
// the watcher's modification-time table never is.
type Run struct {
	ID        int64
	StartedAt time.Time
	Duration  time.Duration
	Reason    string
	Status    string
	Error     string
	Output    string
}
