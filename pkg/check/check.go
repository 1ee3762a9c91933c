// Package check runs one analysis: resolve the arguments, pick the analyzer
// for the language, run it and print its output followed by advice.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/advisor"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/config"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/request"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/runner"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/tools"
)

// Exit codes returned by Handle.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Report describes a completed analysis.
type Report struct {
	Request         *request.Request `json:"request"`
	Command         tools.Command    `json:"command"`
	Result          *runner.Result   `json:"result"`
	Recommendations []string         `json:"recommendations"`
}

type Checker struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *slog.Logger
}

func New(stdout, stderr io.Writer, cfg *config.Config, logger *slog.Logger) *Checker {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Checker{
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
		logger: logger,
	}
}

// Run resolves args and analyzes the file they name.
func (c *Checker) Run(ctx context.Context, args []string) (*Report, error) {
	req, err := request.Resolve(args)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, req)
}

// Execute analyzes an already resolved request.
func (c *Checker) Execute(ctx context.Context, req *request.Request) (*Report, error) {
	tool, err := tools.Lookup(req.Language)
	if err != nil {
		return nil, &tools.UnsupportedLanguageError{Tag: req.RawLanguage}
	}
	cmd := tool.Command(req.FilePath, c.cfg.Overrides[tool.Name])

	c.logger.Info("dispatching analyzer",
		"component", "check",
		"language", req.Language,
		"file", req.FilePath,
		"command", cmd.String())

	fmt.Fprintln(c.stdout, tool.Banner())

	executor := runner.NewExecutor(c.stderr, c.cfg.Timeout, c.logger)
	res, err := executor.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", tool.Name, err)
	}

	if res.ExitCode != 0 {
		c.logger.Info("analyzer exited non-zero, usually meaning issues were reported",
			"component", "check",
			"tool", tool.Name,
			"exit_code", res.ExitCode)
	}

	if _, err := io.WriteString(c.stdout, res.Output); err != nil {
		return nil, fmt.Errorf("failed to write analyzer output: %w", err)
	}

	printer := advisor.NewPrinter(c.stdout, c.cfg.NoColor)
	if err := printer.Print(res.Output); err != nil {
		return nil, err
	}

	return &Report{
		Request:         req,
		Command:         cmd,
		Result:          res,
		Recommendations: advisor.Annotate(res.Output),
	}, nil
}

// Handle prints a human readable message for err and returns the process
// exit code. An unsupported language is informational and exits cleanly.
func Handle(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var (
		usageErr *request.UsageError
		pathErr  *request.InvalidPathError
		langErr  *tools.UnsupportedLanguageError
		toolErr  *runner.ToolExecutionError
	)
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(stdout, request.UsageMessage)
		return ExitUsage
	case errors.As(err, &pathErr):
		fmt.Fprintln(stdout, pathErr.Error())
		return ExitError
	case errors.As(err, &langErr):
		fmt.Fprintln(stdout, langErr.Error())
		return ExitOK
	case errors.As(err, &toolErr):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if toolErr.Op == "locate" {
			fmt.Fprintf(stderr, "Is %s installed and on your PATH?\n", toolErr.Command.Executable)
		}
		return ExitError
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
}
