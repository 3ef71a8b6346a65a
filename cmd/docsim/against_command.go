package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/botirk38/docsim/loader"
)

func newAgainstCommand(ctx *commandContext) *cobra.Command {
	var dir string
	var top int

	cmd := &cobra.Command{
		Use:   "against FILE",
		Short: "Rank a corpus directory by similarity to one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			corpus, err := loader.LoadDir(dir)
			if err != nil {
				return err
			}

			return ctx.withSession(cmd, func(runCtx context.Context, s *session) error {
				limit := s.cfg.Batch.Top
				if cmd.Flags().Changed("top") {
					limit = top
				}
				verdicts, err := s.runner.Against(runCtx, query, corpus, limit)
				if err != nil {
					return err
				}
				return printVerdicts(cmd, ctx.flags.json, verdicts)
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Corpus directory of .txt files")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "Show only the N most similar documents (0 for all)")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}
