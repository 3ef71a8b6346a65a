package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botirk38/docsim/loader"
	"github.com/botirk38/docsim/types"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE_A FILE_B",
		Short: "Compare two documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			b, err := loader.LoadFile(args[1])
			if err != nil {
				return err
			}

			return ctx.withSession(cmd, func(runCtx context.Context, s *session) error {
				v := s.engine.Compare(runCtx, a, b)
				if ctx.flags.json {
					return writeJSON(cmd, v)
				}
				if err := printVerdicts(cmd, false, []types.Verdict{v}); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if v.Undetermined {
					fmt.Fprintln(out, v.Message)
					return nil
				}
				fmt.Fprintf(out, "Threshold: %s (%s backend)\n", s.engine.Threshold(), v.Backend)
				return nil
			})
		},
	}
}
