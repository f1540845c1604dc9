package orchestrator

import (
	"context"

	"github.com/neuromation/hypertune/api/v1/status"
	"github.com/neuromation/hypertune/log"
)

// JobStatusPollerImpl resolves a tracked job state via the orchestrator Client.
type JobStatusPollerImpl struct {
	client Client
}

func NewJobStatusPoller(client Client) status.JobStatusPoller {
	return &JobStatusPollerImpl{
		client: client,
	}
}

func (jspi *JobStatusPollerImpl) Update(ctx context.Context, js *status.JobStatus) error {
	job := jspi.client.GetJob(js.JobName)
	state, err := job.Status(ctx)
	if err != nil {
		return err
	}

	statusName, err := status.FromJobState(state)
	if err != nil {
		return err
	}

	log.Infof(
		"Updating job status %s from %s to %s (%s).",
		js.Id(), js.StatusName(), statusName, state)

	js.SetStatusName(statusName)
	return nil
}
