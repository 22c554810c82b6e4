package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chatbot-trainprep/internal/common/config"
	"chatbot-trainprep/internal/common/logger"
	"chatbot-trainprep/internal/orchestrator"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "trainprep",
	Short: "Build chatbot training data from a Question/Answer spreadsheet",
	Long: `trainprep turns a spreadsheet of questions and answers into the NLU,
domain, stories and rules files of a conversational-AI project, and carries
the small maintenance tools that go with them.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("input", "", "Question/Answer spreadsheet (.xlsx or .csv)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("input.spreadsheet", rootCmd.PersistentFlags().Lookup("input"))

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCleanKeysCmd())
	rootCmd.AddCommand(newSpellCheckCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setup loads the configuration and builds the pipeline every subcommand
// runs on. The returned logger must be synced by the caller.
func setup() (*orchestrator.Pipeline, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return nil, nil, err
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format).WithFields(map[string]interface{}{
		"app":         cfg.App.Name,
		"environment": cfg.App.Environment,
	})
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("config loaded", map[string]interface{}{"file": used})
	}

	pipeline, err := orchestrator.New(cfg, log, os.Stdout)
	if err != nil {
		log.Error("pipeline setup failed", map[string]interface{}{"error": err.Error()})
		_ = log.Sync()
		return nil, nil, err
	}
	return pipeline, log, nil
}
