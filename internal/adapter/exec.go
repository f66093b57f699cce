package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// commandRunner runs name with args in dir and returns its standard output.
type commandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// runCommand is the [commandRunner] backed by os/exec.
func runCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return stdout.Bytes(), fmt.Errorf("%w: %s %s: %s", ErrCommandFailed, name, strings.Join(args, " "), msg)
	}

	return stdout.Bytes(), nil
}

// runWithTimeout runs the command with ctx bounded by timeout. A
// non-positive timeout leaves ctx unchanged.
func runWithTimeout(ctx context.Context, run commandRunner, timeout time.Duration, dir, name string, args ...string) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return run(ctx, dir, name, args...)
}
