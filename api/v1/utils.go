package v1

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/neuromation/hypertune/api/v1/container"
	"github.com/neuromation/hypertune/api/v1/storage"
	"github.com/neuromation/hypertune/api/v1/tuning"
	"github.com/neuromation/hypertune/config"
)

func decodeInto(rc io.ReadCloser, v interface{}) error {
	defer rc.Close()
	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("error while decoding into struct: %s", err)
	}
	return nil
}

// ApplyDefaults fills unset training fields of tc from app configuration,
// so a submitted document only has to declare what varies between runs.
func ApplyDefaults(tc *tuning.Config, cfg *config.Config) {
	t := &tc.Training
	if len(t.Image) == 0 {
		t.Image = container.Image{
			Registry: cfg.Registry,
			Name:     cfg.Image,
			Tag:      cfg.BaseVersion,
		}.String()
	}
	if len(t.RoleARN) == 0 {
		t.RoleARN = cfg.RoleARN
	}
	if len(t.OutputLocation) == 0 {
		t.OutputLocation = storage.OutputLocation(cfg.Bucket, cfg.Prefix)
	}
	if len(t.Compute.InstanceType) == 0 {
		t.Compute.InstanceType = cfg.InstanceType
	}
	if t.Compute.InstanceCount == 0 {
		t.Compute.InstanceCount = int32(cfg.InstanceCount)
	}
	if t.Compute.VolumeSizeGB == 0 {
		t.Compute.VolumeSizeGB = int32(cfg.VolumeSizeGB)
	}
	if t.MaxRuntimeSeconds == 0 {
		t.MaxRuntimeSeconds = int32(cfg.MaxRuntime.Seconds())
	}
}
