package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neuromation/hypertune/api/v1/container"
)

var contextDir string

func init() {
	buildCmd.Flags().StringVar(&contextDir, "context", ".", "container build context directory")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the training container image from the configured base version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		builder := container.NewBuilder()
		return builder.Build(cmd.Context(), imageFromConfig(cfg), contextDir, cfg.BaseVersion)
	},
}
