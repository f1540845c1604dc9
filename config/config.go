package config

import "time"

// Config contains description of app configured variables
type Config struct {
	// Bucket is the object storage bucket holding packaged datasets
	// and training artifacts
	Bucket string `required:"true"`

	// Prefix scopes storage keys and job names of a single demo run
	Prefix string `default:"cnn-tuning"`

	// Region of the managed tuning service and the bucket
	Region string `default:"us-west-2"`

	// RoleARN is assumed by trials to read inputs and write artifacts
	RoleARN string `envconfig:"role_arn"`

	// Registry host for the training image,
	// e.g. 520713654638.dkr.ecr.us-west-2.amazonaws.com
	Registry string

	// Image is the training image repository name
	Image string `default:"cnn-classifier"`

	// BaseVersion is the base-image version tag the image is built from
	BaseVersion string `default:"1.15.2" envconfig:"base_version"`

	// Compute resources of a single trial
	InstanceType  string `default:"ml.m5.xlarge"`
	InstanceCount int    `default:"1"`
	VolumeSizeGB  int    `default:"50" envconfig:"volume_size_gb"`

	// MaxRuntime bounds wall-clock time of a single trial
	MaxRuntime time.Duration `default:"24h"`

	// SubmitTimeout before cancelling tuning service requests
	SubmitTimeout time.Duration `default:"1m"`

	// Addr to listen for incoming requests in API mode
	ListenAddr string `default:":8080"`

	// Server timeouts
	ReadTimeout  time.Duration `default:"1m"`
	WriteTimeout time.Duration `default:"1m"`
	IdleTimeout  time.Duration `default:"10m"`
}
