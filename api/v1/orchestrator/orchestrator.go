package orchestrator

import (
	"context"

	"github.com/neuromation/hypertune/api/v1/tuning"
)

// Client allows creating and getting tuning Jobs
type Client interface {
	NewTuningJob(cfg *tuning.Config) Job
	GetJob(name string) Job
	Ping(ctx context.Context) error
}

// Job describes a common list of actions with a tuning Job
type Job interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Status(ctx context.Context) (string, error)
	GetID() string
}
