package sagemaker

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sm "github.com/aws/aws-sdk-go-v2/service/sagemaker"

	"github.com/neuromation/hypertune/api/v1/tuning"
	"github.com/neuromation/hypertune/log"
)

type sagemakerJob struct {
	client *sagemakerClient
	name   string
	arn    string

	// config is nil for jobs obtained via GetJob
	config *tuning.Config
}

func (j *sagemakerJob) Start(ctx context.Context) error {
	if j.config == nil {
		return fmt.Errorf("job %q has no tuning config to submit", j.name)
	}
	if err := j.config.Validate(); err != nil {
		return fmt.Errorf("invalid tuning config: %s", err)
	}

	input := buildCreateInput(j.name, j.config)
	out, err := j.client.api.CreateHyperParameterTuningJob(ctx, input)
	if err != nil {
		return fmt.Errorf("error while creating tuning job %q: %s", j.name, err)
	}
	j.arn = aws.ToString(out.HyperParameterTuningJobArn)
	log.Infof("created tuning job %q: %s", j.name, j.arn)
	return nil
}

func (j *sagemakerJob) Stop(ctx context.Context) error {
	panic("implement me")
}

func (j *sagemakerJob) Status(ctx context.Context) (string, error) {
	out, err := j.client.api.DescribeHyperParameterTuningJob(ctx, &sm.DescribeHyperParameterTuningJobInput{
		HyperParameterTuningJobName: aws.String(j.name),
	})
	if err != nil {
		return "", fmt.Errorf("error while describing tuning job %q: %s", j.name, err)
	}
	return string(out.HyperParameterTuningJobStatus), nil
}

func (j *sagemakerJob) GetID() string {
	return j.name
}
