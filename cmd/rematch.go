package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/pipeline-cli/internal/resolver"
)

var rematchCmd = &cobra.Command{
	Use:   "rematch",
	Short: "Re-resolve all stored connections against the current company set",
	Long:  "Rebuilds the company directory and re-runs resolution for every stored connection. Do not run concurrently with connection imports.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		r := resolver.New(s)
		if cfg.Rematch.Concurrency > 0 {
			r.Concurrency = cfg.Rematch.Concurrency
		}

		if _, err := r.RematchAll(ctx); err != nil {
			return eris.Wrap(err, "rematch")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rematchCmd)
}
