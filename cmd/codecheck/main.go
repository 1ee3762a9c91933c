package main

import (
	"fmt"
	"io"
	"os"

	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/check"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/config"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/logging"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/request"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/tools"
	"github.com/spf13/cobra"
)

// cli holds flag values and the exit status of one invocation.
type cli struct {
	configPath string
	noColor    bool
	timeout    string

	// exitCode is set by commands that finish without a Go error but still
	// need a non-zero status.
	exitCode int
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codecheck <language> <file_path>",
		Short: "Secure code review using language-specific static analyzers",
		Long: `codecheck: Secure Code Review
Runs the static analyzer for the given language against one file, prints its
report and adds remediation advice for the vulnerability categories it mentions.

Supported languages:
  java        spotbugs -textui <file_path>
  python      bandit -r <file_path>
  c, c++      cppcheck --enable=all <file_path>
  javascript  eslint <file_path>`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.analyze(cmd, args)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to YAML config file (default: $CODECHECK_CONFIG or ./.codecheck.yaml)")
	rootCmd.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&c.timeout, "timeout", "t", "", "Maximum analyzer run time, e.g. 90s or 5m (default: no limit)")

	rootCmd.SetHelpCommand(newHelpCmd(c, rootCmd))
	rootCmd.AddCommand(newToolsCmd(c))
	return rootCmd
}

// newHelpCmd replaces cobra's help command. "codecheck help <file>" is an
// analysis request for the language "help", not a help lookup.
func newHelpCmd(c *cli, rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return rootCmd.Help()
			}
			if len(args) == 1 {
				if target, rest, err := rootCmd.Find(args); err == nil && target != rootCmd && len(rest) == 0 {
					if _, statErr := os.Stat(args[0]); statErr != nil {
						return target.Help()
					}
				}
			}
			return c.analyze(cmd, append([]string{cmd.Name()}, args...))
		},
	}
}

// analyze runs the <language> <file_path> pipeline. Arguments and the
// language are checked before the config file is read.
func (c *cli) analyze(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	req, err := request.Resolve(args)
	if err != nil {
		c.exitCode = check.Handle(err, stdout, stderr)
		return nil
	}
	if _, err := tools.Lookup(req.Language); err != nil {
		c.exitCode = check.Handle(&tools.UnsupportedLanguageError{Tag: req.RawLanguage}, stdout, stderr)
		return nil
	}

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewLoggerFromEnv(stderr)
	checker := check.New(stdout, stderr, cfg, logger)

	_, err = checker.Execute(cmd.Context(), req)
	c.exitCode = check.Handle(err, stdout, stderr)
	return nil
}

// loadConfig reads the config file and applies flag overrides.
func (c *cli) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = c.noColor
	}
	if c.timeout != "" {
		f := config.File{Timeout: c.timeout}
		parsed, err := f.ToConfig()
		if err != nil {
			return nil, err
		}
		cfg.Timeout = parsed.Timeout
	}
	return cfg, nil
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{}
	rootCmd := newRootCmd(c)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return check.ExitError
	}
	return c.exitCode
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
