package status

import (
	"context"
	"encoding/json"
)

// JobStatusPoller resolves the current lifecycle state of a tracked job.
type JobStatusPoller interface {
	Update(ctx context.Context, js *JobStatus) error
}

// JobStatus tracks a submitted tuning job.
type JobStatus struct {
	*GenericStatus
	JobName string

	poller JobStatusPoller
}

func NewJobStatus(jobName string, jobUrl string, poller JobStatusPoller) *JobStatus {
	return &JobStatus{
		GenericStatus: NewGenericStatusWithHttpRedirectUrl(jobUrl),
		JobName:       jobName,
		poller:        poller,
	}
}

func (*JobStatus) IsHttpRedirectSupported() bool {
	return true
}

func (js *JobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicStatusSchema{
		Id:         js.Id(),
		StatusName: js.StatusName(),
		JobName:    js.JobName,
	})
}

func (js *JobStatus) update(ctx context.Context) error {
	return js.poller.Update(ctx, js)
}
