package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/tools"
)

// Result is what one analyzer run produced. A non-zero ExitCode usually
// means the tool reported findings.
type Result struct {
	Output   string        `json:"output"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
}

// ToolExecutionError means the analyzer could not be launched, its output
// could not be read, or it was stopped before finishing.
type ToolExecutionError struct {
	Command tools.Command
	Op      string
	Err     error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Command.Executable, e.Err)
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }

type Executor struct {
	// Stderr receives the analyzer's standard error. Nil discards it.
	Stderr io.Writer
	// Timeout bounds a run. Zero waits forever.
	Timeout time.Duration
	Logger  *slog.Logger
}

func NewExecutor(stderr io.Writer, timeout time.Duration, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{
		Stderr:  stderr,
		Timeout: timeout,
		Logger:  logger,
	}
}

// Available resolves an executable on PATH.
func Available(executable string) (string, error) {
	path, err := exec.LookPath(executable)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", executable, err)
	}
	return path, nil
}

// Run executes c and captures its standard output line by line. The child
// is always waited on, even when reading fails.
func (e *Executor) Run(ctx context.Context, c tools.Command) (*Result, error) {
	logger := e.logger()

	bin, err := exec.LookPath(c.Executable)
	if err != nil {
		return nil, &ToolExecutionError{Command: c, Op: "locate", Err: err}
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Stderr = e.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &ToolExecutionError{Command: c, Op: "start", Err: err}
	}

	logger.Debug("starting analyzer",
		"component", "runner",
		"tool", c.Tool,
		"executable", bin,
		"args", c.Args)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &ToolExecutionError{Command: c, Op: "start", Err: err}
	}

	output, readErr := readLines(stdout)
	if readErr != nil {
		// Stop the child so Wait cannot block on a full pipe.
		_ = cmd.Process.Kill()
	}
	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	if readErr != nil {
		return nil, &ToolExecutionError{Command: c, Op: "read output of", Err: readErr}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &ToolExecutionError{Command: c, Op: "finish", Err: ctxErr}
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, &ToolExecutionError{Command: c, Op: "wait for", Err: waitErr}
		}
		exitCode = exitErr.ExitCode()
	}

	logger.Info("analyzer finished",
		"component", "runner",
		"tool", c.Tool,
		"exit_code", exitCode,
		"duration", elapsed)

	return &Result{
		Output:   output,
		ExitCode: exitCode,
		Duration: elapsed,
	}, nil
}

func (e *Executor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Logger
}

// readLines reads r to EOF, terminating every line with "\n". Lines have
// no length limit.
func readLines(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	var sb strings.Builder
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", fmt.Errorf("reading output: %w", err)
		}
	}
}
