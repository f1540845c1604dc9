package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuromation/hypertune/api/v1/client/sagemaker"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status <job-name>",
	Short: "Query the lifecycle state of a submitted tuning job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		client, err := sagemaker.NewClient(cmd.Context(), cfg.Region)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.SubmitTimeout)
		defer cancel()
		state, err := client.GetJob(args[0]).Status(ctx)
		if err != nil {
			return err
		}
		fmt.Println(state)
		return nil
	},
}
