package watcher

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CommandRunner invokes the generator executable as a subprocess in the
// current working directory, capturing stdout and stderr. The call is
// bounded by Timeout so a hung generator cannot stall the poll loop.
type CommandRunner struct {
	Command string
	Timeout time.Duration
}

func NewCommandRunner(command string, timeout time.Duration) *CommandRunner {
	if command == "" {
		command = DefaultConfig().GeneratorCommand
	}
	if timeout <= 0 {
		timeout = DefaultConfig().GeneratorTimeout
	}
	return &CommandRunner{Command: command, Timeout: timeout}
}

func (r *CommandRunner) Regenerate(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.resolve())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return stdout.String(), fmt.Errorf("generator failed: %s", msg)
	}

	return stdout.String(), nil
}

// resolve prefers a generator binary sitting next to the watcher
// executable, falling back to PATH lookup.
func (r *CommandRunner) resolve() string {
	execPath, err := os.Executable()
	if err != nil {
		return r.Command
	}

	sibling := filepath.Join(filepath.Dir(execPath), r.Command)
	if info, err := os.Stat(sibling); err == nil && !info.IsDir() {
		return sibling
	}

	return r.Command
}
