package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/botirk38/docsim/loader"
)

func newAllCommand(ctx *commandContext) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Compare every pair of documents in a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := loader.LoadDir(dir)
			if err != nil {
				return err
			}

			return ctx.withSession(cmd, func(runCtx context.Context, s *session) error {
				verdicts, err := s.runner.AllPairs(runCtx, docs)
				if err != nil {
					return err
				}
				return printVerdicts(cmd, ctx.flags.json, verdicts)
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Corpus directory of .txt files")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}
