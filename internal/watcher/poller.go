package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/alucardeht/dirdoc/internal/logger"
)

// Runner regenerates the structure document. The returned string is the
// captured generator output.
type Runner interface {
	Regenerate(ctx context.Context) (string, error)
}

const (
	ReasonChange = "change"
	ReasonManual = "manual"
)

// Result is the outcome of one regeneration, handed to OnResult.
type Result struct {
	Reason    string
	StartedAt time.Time
	Duration  time.Duration
	Output    string
	Err       error
}

// Stats is a snapshot of poller counters, safe to read from other
// goroutines.
type Stats struct {
	Iterations    int64
	Regenerations int64
	TrackedFiles  int64
}

// Poller polls the watch directories for modification-time changes and
// invokes the runner when anything changed. It is strictly sequential:
// scanning and regeneration never overlap, and the modification-time
// table is touched only from the Run goroutine.
type Poller struct {
	config Config
	runner Runner
	log    *slog.Logger

	// mtimes maps absolute file paths to their last observed mtime. It
	// lives for the process lifetime and is never persisted.
	mtimes map[string]time.Time

	// OnResult, when set, observes every regeneration outcome.
	OnResult func(Result)

	forceCh chan struct{}
	forced  atomic.Bool

	iterations    atomic.Int64
	regenerations atomic.Int64
	trackedFiles  atomic.Int64
}

func New(config Config, runner Runner) *Poller {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultConfig().PollInterval
	}

	return &Poller{
		config:  config,
		runner:  runner,
		log:     logger.ForComponent("watcher"),
		mtimes:  make(map[string]time.Time),
		forceCh: make(chan struct{}, 1),
	}
}

// Run polls until the context is cancelled. Cancellation is observed at
// the start of each iteration and during the inter-poll sleep.
func (p *Poller) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		p.iterate(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-p.forceCh:
		case <-time.After(p.config.PollInterval):
		}
	}
}

// RequestRegenerate forces a regeneration on the next cycle and cuts
// the current sleep short.
func (p *Poller) RequestRegenerate() {
	p.forced.Store(true)
	select {
	case p.forceCh <- struct{}{}:
	default:
	}
}

func (p *Poller) Stats() Stats {
	return Stats{
		Iterations:    p.iterations.Load(),
		Regenerations: p.regenerations.Load(),
		TrackedFiles:  p.trackedFiles.Load(),
	}
}

// iterate runs a single poll cycle: scan, then regenerate if anything
// changed or a regeneration was requested.
func (p *Poller) iterate(ctx context.Context) {
	p.iterations.Add(1)

	changed := p.scan()
	forced := p.forced.Swap(false)

	if !changed && !forced {
		return
	}

	reason := ReasonChange
	if !changed {
		reason = ReasonManual
	}

	p.regenerate(ctx, reason)
}

// scan walks every existing watch directory and updates the
// modification-time table. A file is a change when it is new to the
// table or its mtime differs from the recorded one. Files that vanish
// mid-walk are skipped for this iteration.
func (p *Poller) scan() bool {
	changed := false

	for _, dir := range p.config.WatchDirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != dir && p.pruned(d.Name()) {
					return fs.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return nil
			}

			mod := info.ModTime()
			if prev, ok := p.mtimes[path]; !ok || !prev.Equal(mod) {
				p.mtimes[path] = mod
				changed = true
			}

			return nil
		})
	}

	p.trackedFiles.Store(int64(len(p.mtimes)))
	return changed
}

func (p *Poller) pruned(name string) bool {
	for _, d := range p.config.PruneDirs {
		if name == d {
			return true
		}
	}
	return false
}

func (p *Poller) regenerate(ctx context.Context, reason string) {
	p.regenerations.Add(1)

	start := time.Now()
	output, err := p.runner.Regenerate(ctx)
	result := Result{
		Reason:    reason,
		StartedAt: start,
		Duration:  time.Since(start),
		Output:    output,
		Err:       err,
	}

	if err != nil {
		p.log.Error("regeneration failed", "reason", reason, "error", err)
	} else {
		p.log.Debug("regeneration complete", "reason", reason, "duration", result.Duration)
	}

	if p.OnResult != nil {
		p.OnResult(result)
	}
}
