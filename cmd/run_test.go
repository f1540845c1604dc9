package cmd

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/neuromation/hypertune/log"
)

func TestMain(m *testing.M) {
	log.SuppressOutput(true)
	retCode := m.Run()
	log.SuppressOutput(false)
	os.Exit(retCode)
}

// stateSequenceJob replays a fixed sequence of lifecycle states,
// repeating the last one once the sequence is exhausted.
type stateSequenceJob struct {
	states []string
	calls  int
}

func (j *stateSequenceJob) Start(_ context.Context) error { return nil }

func (j *stateSequenceJob) Stop(_ context.Context) error { return nil }

func (j *stateSequenceJob) Status(_ context.Context) (string, error) {
	i := j.calls
	if i >= len(j.states) {
		i = len(j.states) - 1
	}
	j.calls++
	return j.states[i], nil
}

func (j *stateSequenceJob) GetID() string { return "cnn-demo" }

func TestWatchJob(t *testing.T) {
	job := &stateSequenceJob{states: []string{"InProgress", "InProgress", "Completed"}}
	if err := watchJob(context.Background(), job, 0); err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if job.calls != 3 {
		t.Fatalf("got %d status calls; expected 3", job.calls)
	}
}

func TestWatchJob_UnknownState(t *testing.T) {
	job := &stateSequenceJob{states: []string{"Launching"}}
	err := watchJob(context.Background(), job, 0)
	if err == nil {
		t.Fatalf("expected to get err for unknown state; got nil instead")
	}
	if !strings.Contains(err.Error(), "unknown tuning job state") {
		t.Fatalf("expected unknown state err; got: %q", err)
	}
	if job.calls != 1 {
		t.Fatalf("got %d status calls; expected polling to stop after 1", job.calls)
	}
}
