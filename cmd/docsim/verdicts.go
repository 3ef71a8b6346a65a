package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botirk38/docsim/types"
)

var verdictHeaders = []string{"Document A", "Document B", "Similarity", "Plagiarism", "Kind"}

var verdictAligns = []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft}

func verdictRow(v types.Verdict) []string {
	if v.Undetermined {
		return []string{v.LabelA, v.LabelB, "n/a", "undetermined", ""}
	}
	return []string{
		v.LabelA,
		v.LabelB,
		fmt.Sprintf("%.2f%%", v.SimilarityPercentage),
		yesNo(v.IsPlagiarism),
		string(v.Kind),
	}
}

func printVerdicts(cmd *cobra.Command, asJSON bool, verdicts []types.Verdict) error {
	if asJSON {
		return writeJSON(cmd, verdicts)
	}
	out := cmd.OutOrStdout()
	if len(verdicts) == 0 {
		fmt.Fprintln(out, "No comparisons")
		return nil
	}
	rows := make([][]string, 0, len(verdicts))
	for _, v := range verdicts {
		rows = append(rows, verdictRow(v))
	}
	fmt.Fprintln(out, renderTable(out, verdictHeaders, rows, verdictAligns))
	return nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
