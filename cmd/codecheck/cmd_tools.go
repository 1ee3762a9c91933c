package main

import (
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/check"
	"github.com/spf13/cobra"
)

func newToolsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List supported languages and check that their analyzers are installed",
		Long: `List every supported language, the analyzer command used for it and
whether that analyzer can be found. Exits non-zero when any analyzer is missing.

With arguments, "tools" is taken as a language tag: "codecheck tools <file>"
is an ordinary analysis request.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return c.analyze(cmd, append([]string{cmd.Name()}, args...))
			}

			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			missing, err := check.ListTools(cmd.OutOrStdout(), cfg.Overrides, cfg.NoColor)
			if err != nil {
				return err
			}
			if missing > 0 {
				c.exitCode = check.ExitError
			}
			return nil
		},
	}
}
