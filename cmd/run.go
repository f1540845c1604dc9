package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	api "github.com/neuromation/hypertune/api/v1"
	"github.com/neuromation/hypertune/api/v1/client/sagemaker"
	"github.com/neuromation/hypertune/api/v1/container"
	"github.com/neuromation/hypertune/api/v1/orchestrator"
	"github.com/neuromation/hypertune/api/v1/status"
	"github.com/neuromation/hypertune/api/v1/tuning"
	"github.com/neuromation/hypertune/log"
)

var (
	runSmoke bool
	runWatch time.Duration
)

func init() {
	runCmd.Flags().StringVar(&contextDir, "context", ".", "container build context directory")
	runCmd.Flags().StringVar(&dataDir, "data-dir", "./data", "directory holding <split>/<label>/<image> files")
	runCmd.Flags().StringSliceVar(&splits, "splits", []string{"train", "test"}, "dataset splits to package")
	runCmd.Flags().IntVar(&classes, "classes", 10, "number of classes for one-hot label encoding")
	runCmd.Flags().BoolVar(&runSmoke, "smoke", false, "run the image locally before pushing")
	runCmd.Flags().DurationVar(&runWatch, "watch", 0, "poll job state at this interval until the job finishes; 0 disables polling")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run ./path/to/tuning.yaml",
	Short: "Run the whole workflow: build, package, smoke-test, push, submit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		ctx := cmd.Context()

		tc := &tuning.Config{}
		if err := bindYaml(args[0], tc); err != nil {
			return err
		}

		image := imageFromConfig(cfg)
		builder := container.NewBuilder()
		if err := builder.Build(ctx, image, contextDir, cfg.BaseVersion); err != nil {
			return err
		}

		channels, err := packageSplits(cmd, cfg)
		if err != nil {
			return err
		}
		tc.Training.Channels = channels
		api.ApplyDefaults(tc, cfg)

		if runSmoke {
			if err := tc.Validate(); err != nil {
				return err
			}
			if err := builder.Run(ctx, image, smokeEnv(tc)); err != nil {
				return err
			}
		}

		auth, err := container.GetRegistryAuth(ctx, cfg.Region)
		if err != nil {
			return err
		}
		if err := builder.Login(ctx, auth.Host, auth.User, auth.Password); err != nil {
			return err
		}
		if err := builder.Push(ctx, image); err != nil {
			return err
		}

		client, err := sagemaker.NewClient(ctx, cfg.Region)
		if err != nil {
			return err
		}
		job := client.NewTuningJob(tc)
		if err := job.Start(ctx); err != nil {
			return err
		}
		fmt.Println(job.GetID())

		if runWatch <= 0 {
			return nil
		}
		return watchJob(ctx, job, runWatch)
	},
}

// watchJob polls job state at the given interval until the job finishes.
// An unrecognized lifecycle state aborts polling instead of looping forever.
func watchJob(ctx context.Context, job orchestrator.Job, interval time.Duration) error {
	for {
		state, err := job.Status(ctx)
		if err != nil {
			return err
		}
		log.Infof("tuning job %q is %s", job.GetID(), state)
		name, err := status.FromJobState(state)
		if err != nil {
			return err
		}
		if name != status.STATUS_PENDING {
			return nil
		}
		time.Sleep(interval)
	}
}
