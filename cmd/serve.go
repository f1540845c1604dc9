package cmd

import (
	"github.com/spf13/cobra"

	api "github.com/neuromation/hypertune/api/v1"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tuning workflow as an HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.Serve(loadConfig())
	},
}
