package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuromation/hypertune/api/v1/dataset"
	"github.com/neuromation/hypertune/api/v1/storage"
	"github.com/neuromation/hypertune/api/v1/tuning"
	"github.com/neuromation/hypertune/config"
)

var (
	dataDir string
	splits  []string
	classes int
)

func init() {
	packageCmd.Flags().StringVar(&dataDir, "data-dir", "./data", "directory holding <split>/<label>/<image> files")
	packageCmd.Flags().StringSliceVar(&splits, "splits", []string{"train", "test"}, "dataset splits to package")
	packageCmd.Flags().IntVar(&classes, "classes", 10, "number of classes for one-hot label encoding")
	rootCmd.AddCommand(packageCmd)
}

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Package local dataset splits and upload them to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		channels, err := packageSplits(cmd, cfg)
		if err != nil {
			return err
		}
		for _, ch := range channels {
			fmt.Printf("%s\t%s\n", ch.Name, ch.Location)
		}
		return nil
	},
}

func packageSplits(cmd *cobra.Command, cfg *config.Config) ([]tuning.Channel, error) {
	ctx := cmd.Context()
	store, err := storage.New(ctx, cfg.Region, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	loaded := make([]dataset.Split, 0, len(splits))
	for _, name := range splits {
		s, err := dataset.LoadSplit(dataDir, name)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, s)
	}
	packager := dataset.NewPackager(store, cfg.Prefix, classes)
	return packager.Upload(ctx, loaded...)
}
