package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"foc/internal/category"
	"foc/internal/preflight"
)

const statusLabelWidth = 18

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether a directory is ready to be organized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(pathFlag)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cfg, root, category.Default())
			for _, result := range results {
				fmt.Fprintln(out, renderStatusLine(result, colorize))
			}
			if failed := preflight.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Path to check (default: current directory)")
	return cmd
}

func renderStatusLine(result preflight.Result, colorize bool) string {
	kind, label := statusOK, "OK"
	if !result.Passed {
		kind, label = statusError, "ERROR"
	}
	line := fmt.Sprintf("%-*s [%s] %s", statusLabelWidth, result.Name+":", label, result.Detail)
	if colorize {
		return statusKindColor(kind) + line + ansiReset
	}
	return line
}
