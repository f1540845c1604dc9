package cmd

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/neuromation/hypertune/config"
	"github.com/neuromation/hypertune/log"
)

var rootCmd = &cobra.Command{
	Use:           "hypertune",
	Short:         "Hyperparameter tuning workflow for a CNN image classifier",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

// loadConfig reads app configuration from HYPERTUNE_* environment variables
func loadConfig() *config.Config {
	cfg := &config.Config{}
	if err := envconfig.Process("hypertune", cfg); err != nil {
		log.Fatalf("error while parsing config: %s", err)
	}
	return cfg
}
