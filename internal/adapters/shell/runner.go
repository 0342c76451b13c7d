// Package shell runs external processes under a pseudo-terminal or plain pipes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/zerr"
)

// ErrEmptyCommand is returned when a command has no arguments.
var ErrEmptyCommand = zerr.New("empty command")

// Command describes one process invocation.
type Command struct {
	Args []string
	Dir  string
}

// Runner starts processes and streams their combined output.
type Runner struct {
	usePTY bool
}

// NewRunner creates a Runner. With usePTY the child sees a terminal, so compilers
// keep colouring their diagnostics.
func NewRunner(usePTY bool) *Runner {
	return &Runner{usePTY: usePTY}
}

// Run executes cmd, writes its stdout and stderr to out and waits for it.
// A non-zero exit is reported with the exit code attached.
func (r *Runner) Run(ctx context.Context, cmd Command, out io.Writer) error {
	if len(cmd.Args) == 0 {
		return ErrEmptyCommand
	}

	c := r.command(ctx, cmd)

	var err error
	if r.usePTY {
		err = runPTY(c, out)
		if errors.Is(err, errPTYUnavailable) {
			err = runPipes(r.command(ctx, cmd), out)
		}
	} else {
		err = runPipes(c, out)
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// Capture executes cmd over pipes and returns its standard output. Standard error
// is attached to the returned error when the command fails.
func (r *Runner) Capture(ctx context.Context, cmd Command) ([]byte, error) {
	if len(cmd.Args) == 0 {
		return nil, ErrEmptyCommand
	}

	var stdout, stderr bytes.Buffer
	c := r.command(ctx, cmd)
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return stdout.Bytes(), err
	}
	return stdout.Bytes(), nil
}

// command builds the process for cmd. The child inherits the environment.
func (r *Runner) command(ctx context.Context, cmd Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // compiler invocation from user configuration
	c.Dir = cmd.Dir
	return c
}

var errPTYUnavailable = zerr.New("pty unavailable")

func runPTY(c *exec.Cmd, out io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) && pathErr.Path == "/dev/ptmx" {
			return errors.Join(errPTYUnavailable, err)
		}
		if errors.Is(err, pty.ErrUnsupported) {
			return errors.Join(errPTYUnavailable, err)
		}
		return err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master fails with EIO once the child side is closed.
		_, _ = io.Copy(out, ptmx)
	}()

	err = c.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

func runPipes(c *exec.Cmd, out io.Writer) error {
	c.Stdout = out
	c.Stderr = out
	return c.Run()
}
