package link

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// Child is a running overlay process.
type Child struct {
	*Publisher
	cmd *exec.Cmd
}

// Launch starts exe with args and returns a Child whose Publisher feeds the
// process's stdin. Output of the child goes to this process's stdout/stderr.
func Launch(ctx context.Context, exe string, args ...string) (*Child, error) {
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open overlay stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start overlay: %w", err)
	}
	zap.S().Infow("overlay started", "pid", cmd.Process.Pid)

	return &Child{Publisher: NewPublisher(stdin), cmd: cmd}, nil
}

// Wait closes the link and waits for the overlay to exit.
func (c *Child) Wait() error {
	if err := c.Close(); err != nil {
		zap.S().Debugw("failed to close overlay link", "error", err)
	}
	if err := c.cmd.Wait(); err != nil {
		return fmt.Errorf("overlay exited: %w", err)
	}
	return nil
}
