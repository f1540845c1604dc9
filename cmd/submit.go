package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	api "github.com/neuromation/hypertune/api/v1"
	"github.com/neuromation/hypertune/api/v1/client/sagemaker"
	"github.com/neuromation/hypertune/api/v1/tuning"
)

func init() {
	rootCmd.AddCommand(submitCmd)
}

var submitCmd = &cobra.Command{
	Use:   "submit ./path/to/tuning.yaml",
	Short: "Submit a tuning job to the managed tuning service",
	Long: `Submit a tuning job described by a yaml file.

	Example tuning.yaml:

	strategy: Bayesian
	ranges:
	  - name: learning_rate
	    kind: continuous
	    min: 0.0001
	    max: 0.001
	limits:
	  max_total_trials: 9
	  max_concurrent_trials: 3
	objective:
	  metric_name: loss
	  direction: Minimize
	metrics:
	  - name: loss
	    regex: 'loss: ([0-9\.]+)'
	training:
	  channels:
	    - name: train
	      location: s3://bucket/data/cnn-tuning/train/train.gob.gz
	      compression: Gzip
	  static_hyperparameters:
	    epochs: "10"
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		tc := &tuning.Config{}
		if err := bindYaml(args[0], tc); err != nil {
			return err
		}
		api.ApplyDefaults(tc, cfg)

		client, err := sagemaker.NewClient(cmd.Context(), cfg.Region)
		if err != nil {
			return err
		}

		job := client.NewTuningJob(tc)
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.SubmitTimeout)
		defer cancel()
		if err := job.Start(ctx); err != nil {
			return err
		}
		fmt.Println(job.GetID())
		return nil
	},
}
