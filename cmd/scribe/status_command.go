package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check environment readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(out, line)
			}

			results := preflight.Run(cfg)
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					if result.Optional {
						kind = statusWarn
					}
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			fmt.Fprintln(out)
			if preflight.Ready(results) {
				fmt.Fprintln(out, renderStatusLine("Ready", statusOK, "drain can run", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Ready", statusError, "fix the failing checks before draining", colorize))
			}
			return nil
		},
	}
}
