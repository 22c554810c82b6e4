package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCleanKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean-keys",
		Short: "Replace characters outside letters, digits and underscore in YAML keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			// Failures are reported by the pipeline; the command still
			// exits cleanly and the file is left untouched.
			_, _ = pipeline.CleanKeys(cmd.Context())
			return nil
		},
	}

	cmd.Flags().String("path", "", "YAML file to clean (default domain.yml)")
	_ = viper.BindPFlag("clean_keys.path", cmd.Flags().Lookup("path"))
	return cmd
}
