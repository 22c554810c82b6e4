package main

import (
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write nlu.yml, domain.yml, stories.yml and rules.yml from the spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			_, err = pipeline.Run(cmd.Context())
			return err
		},
	}
}
