package protocol

import "time"

// Wire types for the watcher control socket.

type StatusResponse struct {
	PID           int         `json:"pid"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	Iterations    int64       `json:"iterations"`
	Regenerations int64       `json:"regenerations"`
	TrackedFiles  int64       `json:"tracked_files"`
	LastRun       *RunSummary `json:"last_run,omitempty"`
}

type RunSummary struct {
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
}

type RegenerateResponse struct {
	Requested bool `json:"requested"`
}

type ShutdownResponse struct {
	Stopping bool `json:"stopping"`
}
