package execs

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	cerrors "github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/logging"
	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog"
)

// ErrEmptyCommand is returned when a command string has no words.
var ErrEmptyCommand = errors.New("empty command")

// Result represents the result of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes a command in a working directory. A non-zero exit is not an
// error: it is reported through Result.ExitCode. Errors are reserved for
// commands that could not be started at all.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) (*Result, error)
}

// Parse splits a command line into words using shell quoting rules.
func Parse(command string) ([]string, error) {
	argv, err := shellwords.Parse(command)
	if err != nil {
		return nil, cerrors.Wrapf(err, cerrors.ErrInvalidInput, "cannot parse command %q", command)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return argv, nil
}

// ShellRunner runs commands with os/exec.
type ShellRunner struct {
	logger zerolog.Logger
}

// NewShellRunner creates a runner backed by os/exec.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{logger: logging.GetLogger("execs")}
}

// Run implements Runner.
func (r *ShellRunner) Run(ctx context.Context, dir string, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	logging.LogCommand(r.logger, dir, argv)
	start := time.Now()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		err = nil
	}
	if err != nil {
		return nil, cerrors.Wrapf(err, cerrors.ErrCommandFailed, "cannot run %s", strings.Join(argv, " "))
	}

	r.logger.Debug().
		Strs("argv", argv).
		Int("exitCode", result.ExitCode).
		Dur("duration", time.Since(start)).
		Msg("Command finished")

	return result, nil
}

// RunChecked runs argv and turns a non-zero exit into an ErrCommandFailed error
// carrying the command's stderr.
func RunChecked(ctx context.Context, r Runner, dir string, argv []string) (*Result, error) {
	result, err := r.Run(ctx, dir, argv)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		msg := strings.TrimSpace(result.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(result.Stdout)
		}
		return result, cerrors.Newf(cerrors.ErrCommandFailed, "%s exited with status %d: %s",
			strings.Join(argv, " "), result.ExitCode, msg).
			WithDetail("dir", dir).
			WithDetail("exitCode", result.ExitCode)
	}
	return result, nil
}
