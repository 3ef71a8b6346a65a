package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/botirk38/docsim/batch"
)

func newEvaluateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate PAIRS.toml",
		Short: "Score labelled document pairs and report TPR, FPR and AUC",
		Long: `Reads a TOML file of [[pair]] tables:

  [[pair]]
  a = "original/essay.txt"
  b = "suspect/essay.txt"
  plagiarism = true

Paths are relative to the pairs file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := batch.LoadPairs(args[0])
			if err != nil {
				return err
			}

			return ctx.withSession(cmd, func(runCtx context.Context, s *session) error {
				eval, err := s.runner.Evaluate(runCtx, pairs)
				if err != nil {
					return err
				}
				if ctx.flags.json {
					return writeJSON(cmd, eval)
				}
				printEvaluation(cmd, eval)
				return nil
			})
		},
	}
}

func printEvaluation(cmd *cobra.Command, eval *batch.Evaluation) {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"True Positive", strconv.Itoa(eval.TruePositives)},
		{"True Negative", strconv.Itoa(eval.TrueNegatives)},
		{"False Positive", strconv.Itoa(eval.FalsePositives)},
		{"False Negative", strconv.Itoa(eval.FalseNegatives)},
	}
	if eval.Skipped > 0 {
		rows = append(rows, []string{"Skipped", strconv.Itoa(eval.Skipped)})
	}
	fmt.Fprintln(out, renderTable(out, []string{"Outcome", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	fmt.Fprintf(out, "TPR: %.4f\n", eval.TPR)
	fmt.Fprintf(out, "FPR: %.4f\n", eval.FPR)
	fmt.Fprintf(out, "AUC: %.4f\n", eval.AUC)
}
