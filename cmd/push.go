package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuromation/hypertune/api/v1/container"
)

func init() {
	rootCmd.AddCommand(pushCmd)
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Log in to the registry and push the training image",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		ctx := cmd.Context()
		auth, err := container.GetRegistryAuth(ctx, cfg.Region)
		if err != nil {
			return err
		}
		builder := container.NewBuilder()
		if err := builder.Login(ctx, auth.Host, auth.User, auth.Password); err != nil {
			return fmt.Errorf("error while logging in to registry %q: %s", auth.Host, err)
		}
		return builder.Push(ctx, imageFromConfig(cfg))
	},
}
