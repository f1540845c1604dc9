// Package sagemaker implements the orchestrator client on top of the
// managed AWS SageMaker hyperparameter tuning service.
package sagemaker

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	sm "github.com/aws/aws-sdk-go-v2/service/sagemaker"

	"github.com/neuromation/hypertune/api/v1/orchestrator"
	"github.com/neuromation/hypertune/api/v1/tuning"
)

// API is the narrow tuning service surface the client relies on.
// Declared separately so tests can substitute a fake service.
type API interface {
	CreateHyperParameterTuningJob(ctx context.Context, params *sm.CreateHyperParameterTuningJobInput, optFns ...func(*sm.Options)) (*sm.CreateHyperParameterTuningJobOutput, error)
	DescribeHyperParameterTuningJob(ctx context.Context, params *sm.DescribeHyperParameterTuningJobInput, optFns ...func(*sm.Options)) (*sm.DescribeHyperParameterTuningJobOutput, error)
	ListHyperParameterTuningJobs(ctx context.Context, params *sm.ListHyperParameterTuningJobsInput, optFns ...func(*sm.Options)) (*sm.ListHyperParameterTuningJobsOutput, error)
}

type sagemakerClient struct {
	api API
}

// NewClient creates new orchestrator.Client for the given region
func NewClient(ctx context.Context, region string) (orchestrator.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error while loading aws config: %s", err)
	}
	return NewClientWithAPI(sm.NewFromConfig(cfg)), nil
}

// NewClientWithAPI creates new orchestrator.Client from a preconfigured API
func NewClientWithAPI(api API) orchestrator.Client {
	return &sagemakerClient{api: api}
}

func (c *sagemakerClient) NewTuningJob(cfg *tuning.Config) orchestrator.Job {
	name := cfg.Name
	if len(name) == 0 {
		name = tuning.JobName("tuning")
	}
	return &sagemakerJob{
		client: c,
		name:   name,
		config: cfg,
	}
}

func (c *sagemakerClient) GetJob(name string) orchestrator.Job {
	return &sagemakerJob{
		client: c,
		name:   name,
	}
}

func (c *sagemakerClient) Ping(ctx context.Context) error {
	_, err := c.api.ListHyperParameterTuningJobs(ctx, &sm.ListHyperParameterTuningJobsInput{
		MaxResults: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("error while pinging tuning service: %s", err)
	}
	return nil
}
