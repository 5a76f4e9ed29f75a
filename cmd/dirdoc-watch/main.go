package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alucardeht/dirdoc/internal/config"
	"github.com/alucardeht/dirdoc/internal/control"
	"github.com/alucardeht/dirdoc/internal/history"
	"github.com/alucardeht/dirdoc/internal/logger"
	"github.com/alucardeht/dirdoc/internal/watcher"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	switch flag.Arg(0) {
	case "":
		runWatch(cfg)
	case "status":
		runStatus(cfg)
	case "stop":
		runStop(cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s (expected status or stop)\n", flag.Arg(0))
		os.Exit(2)
	}
}

func runWatch(cfg *config.Config) {
	log := logger.ForComponent("main")

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	pidFile := control.NewPIDFile(cfg.Control.PIDPath)
	if pidFile.IsProcessAlive() {
		fmt.Println("Watcher already running")
		return
	}
	if err := pidFile.Write(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	defer pidFile.Remove()

	var hist *history.Store
	if cfg.History.Enabled {
		store, err := history.NewStore(cfg.History.DBPath)
		if err != nil {
			log.Warn("run history disabled", "error", err)
		} else {
			hist = store
			defer hist.Close()
		}
	}

	runner := watcher.NewCommandRunner(cfg.Watcher.GeneratorCommand, cfg.Watcher.GeneratorTimeout)
	poller := watcher.New(cfg.Watcher, runner)
	poller.OnResult = func(r watcher.Result) {
		if r.Reason == watcher.ReasonChange {
			fmt.Println("🔄 Changes detected, regenerating structure...")
		}
		if r.Err != nil {
			fmt.Printf("❌ Error updating structure: %v\n", r.Err)
		} else {
			fmt.Println("✅ Structure updated!")
		}

		if hist == nil {
			return
		}
		run := history.Run{
			StartedAt: r.StartedAt,
			Duration:  r.Duration,
			Reason:    r.Reason,
			Status:    history.StatusOK,
			Output:    strings.TrimSpace(r.Output),
		}
		if r.Err != nil {
			run.Status = history.StatusError
			run.Error = r.Err.Error()
		}
		if _, err := hist.RecordRun(run); err != nil {
			log.Warn("failed to record run", "error", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := control.NewServer(cfg.Control.SocketPath, poller, hist, cancel)
	if err := srv.Start(); err != nil {
		log.Warn("control socket unavailable", "error", err)
	} else {
		defer srv.Close()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Println("🌿 Starting directory structure watcher...")
	fmt.Println("📁 Watching for changes in project files...")
	fmt.Println("🔄 Press Ctrl+C to stop")

	poller.Run(ctx)

	fmt.Println("\n👋 Stopping watcher...")
}

func runStatus(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := control.Dial(ctx, cfg.Control.SocketPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Watcher is not running")
		os.Exit(1)
	}
	defer client.Close()

	status, err := client.Status(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Watcher running (pid %d)\n", status.PID)
	fmt.Printf("  uptime:        %s\n", (time.Duration(status.UptimeSeconds) * time.Second).String())
	fmt.Printf("  iterations:    %d\n", status.Iterations)
	fmt.Printf("  regenerations: %d\n", status.Regenerations)
	fmt.Printf("  tracked files: %d\n", status.TrackedFiles)

	if status.LastRun != nil {
		outcome := status.LastRun.Status
		if status.LastRun.Error != "" {
			outcome += ": " + status.LastRun.Error
		}
		fmt.Printf("  last run:      %s %s %s (%dms)\n",
			status.LastRun.StartedAt.Format(time.RFC3339),
			status.LastRun.Reason,
			outcome,
			status.LastRun.DurationMS)
	}
}

func runStop(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := control.Dial(ctx, cfg.Control.SocketPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Watcher is not running")
		os.Exit(1)
	}
	defer client.Close()

	if err := client.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("👋 Watcher stopping...")
}
