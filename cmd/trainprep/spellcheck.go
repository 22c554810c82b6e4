package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSpellCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spellcheck",
		Short: "Spell-correct the training examples of the generated NLU file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			_, err = pipeline.SpellCheck(cmd.Context())
			return err
		},
	}

	cmd.Flags().String("dictionary", "", "word list used as the correction vocabulary")
	cmd.Flags().Bool("train-on-answers", false, "also learn the vocabulary from the answers in domain.yml")
	cmd.Flags().Int("batch-size", 0, "messages per correction batch (default 50)")

	_ = viper.BindPFlag("spellcheck.dictionary_path", cmd.Flags().Lookup("dictionary"))
	_ = viper.BindPFlag("spellcheck.train_on_answers", cmd.Flags().Lookup("train-on-answers"))
	_ = viper.BindPFlag("spellcheck.batch_size", cmd.Flags().Lookup("batch-size"))
	return cmd
}
