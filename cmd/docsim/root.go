package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "docsim",
		Short:         "Compare documents and flag plagiarism",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log pipeline details to stderr")
	pf.BoolVar(&flags.json, "json", false, "Write results as JSON")
	pf.Float64Var(&flags.threshold, "threshold", 0, "Plagiarism threshold (percent for presence, fraction for embedding)")
	pf.StringVar(&flags.backend, "backend", "", "Scoring backend: presence or embedding")

	rootCmd.AddCommand(newCompareCommand(ctx))
	rootCmd.AddCommand(newAgainstCommand(ctx))
	rootCmd.AddCommand(newAllCommand(ctx))
	rootCmd.AddCommand(newEvaluateCommand(ctx))

	return rootCmd
}
