package cmd

import (
	"github.com/spf13/cobra"

	api "github.com/neuromation/hypertune/api/v1"
	"github.com/neuromation/hypertune/api/v1/container"
	"github.com/neuromation/hypertune/api/v1/tuning"
)

func init() {
	rootCmd.AddCommand(smokeCmd)
}

var smokeCmd = &cobra.Command{
	Use:   "smoke ./path/to/tuning.yaml",
	Short: "Run the training image locally once before incurring cloud cost",
	Long: `Run the training image locally with a fixed hyperparameter set and
the same input channel locations the cloud job would use, streaming logs
until the container exits or the run is interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		tc := &tuning.Config{}
		if err := bindYaml(args[0], tc); err != nil {
			return err
		}
		api.ApplyDefaults(tc, cfg)
		if err := tc.Validate(); err != nil {
			return err
		}

		builder := container.NewBuilder()
		return builder.Run(cmd.Context(), imageFromConfig(cfg), smokeEnv(tc))
	},
}
