package control

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alucardeht/dirdoc/internal/watcher"
)

type nopRunner struct{}

func (nopRunner) Regenerate(ctx context.Context) (string, error) { return "", nil }

func TestPIDFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.pid")
	pf := NewPIDFile(path)

	if err := pf.Write(); err != nil {
		t.Fatalf("write: %v", err)
	}

	pid, err := pf.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if pid != os.Getpid() {
		t.Errorf("expected own pid %d, got %d", os.Getpid(), pid)
	}

	if !pf.IsProcessAlive() {
		t.Error("own process should be reported alive")
	}

	if err := pf.Remove(); err != nil {
		t.Fatalf("remove: %v", err)
	}

	pid, err = pf.Read()
	if err != nil {
		t.Fatalf("read after remove: %v", err)
	}
	if pid != 0 {
		t.Errorf("expected 0 after remove, got %d", pid)
	}
}

func TestPIDFileStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.pid")
	if err := os.WriteFile(path, []byte("999999999"), 0600); err != nil {
		t.Fatal(err)
	}

	pf := NewPIDFile(path)
	if pf.IsProcessAlive() {
		t.Error("absurd pid should not be reported alive")
	}
}

func TestServerRoundTrip(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "watch.sock")

	cfg := watcher.DefaultConfig()
	cfg.WatchDirs = nil
	poller := watcher.New(cfg, nopRunner{})

	stopped := make(chan struct{})
	srv := NewServer(sock, poller, nil, func() { close(stopped) })
	if err := srv.Start(); err != nil {
		t.Fatalf("start server: %v", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, sock)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	status, err := client.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.PID != os.Getpid() {
		t.Errorf("expected pid %d, got %d", os.Getpid(), status.PID)
	}
	if status.LastRun != nil {
		t.Error("no history store means no last run")
	}

	if err := client.Regenerate(ctx); err != nil {
		t.Fatalf("regenerate: %v", err)
	}

	if err := client.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown callback was never invoked")
	}
}
