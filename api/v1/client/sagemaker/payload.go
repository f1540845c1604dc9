package sagemaker

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	sm "github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"

	"github.com/neuromation/hypertune/api/v1/tuning"
)

// buildCreateInput maps a validated tuning config to the two documents
// the service accepts in one atomic call: the tuning job config and the
// training job definition.
func buildCreateInput(name string, cfg *tuning.Config) *sm.CreateHyperParameterTuningJobInput {
	strategy := cfg.Strategy
	if len(strategy) == 0 {
		strategy = "Bayesian"
	}
	return &sm.CreateHyperParameterTuningJobInput{
		HyperParameterTuningJobName: aws.String(name),
		HyperParameterTuningJobConfig: &types.HyperParameterTuningJobConfig{
			Strategy: types.HyperParameterTuningJobStrategyType(strategy),
			HyperParameterTuningJobObjective: &types.HyperParameterTuningJobObjective{
				MetricName: aws.String(cfg.Objective.MetricName),
				Type:       objectiveType(cfg.Objective.Direction),
			},
			ResourceLimits: &types.ResourceLimits{
				MaxNumberOfTrainingJobs: aws.Int32(cfg.Limits.MaxTotalTrials),
				MaxParallelTrainingJobs: cfg.Limits.MaxConcurrentTrials,
			},
			ParameterRanges: parameterRanges(cfg.Ranges),
		},
		TrainingJobDefinition: trainingJobDefinition(&cfg.Training, cfg.Metrics),
	}
}

func objectiveType(d tuning.Direction) types.HyperParameterTuningJobObjectiveType {
	if d == tuning.Maximize {
		return types.HyperParameterTuningJobObjectiveTypeMaximize
	}
	return types.HyperParameterTuningJobObjectiveTypeMinimize
}

func parameterRanges(ranges []tuning.ParameterRange) *types.ParameterRanges {
	pr := &types.ParameterRanges{}
	for _, r := range ranges {
		switch r.Kind {
		case tuning.Continuous:
			pr.ContinuousParameterRanges = append(pr.ContinuousParameterRanges, types.ContinuousParameterRange{
				Name:     aws.String(r.Name),
				MinValue: aws.String(formatFloat(r.Min)),
				MaxValue: aws.String(formatFloat(r.Max)),
			})
		case tuning.Integer:
			pr.IntegerParameterRanges = append(pr.IntegerParameterRanges, types.IntegerParameterRange{
				Name:     aws.String(r.Name),
				MinValue: aws.String(strconv.FormatInt(int64(r.Min), 10)),
				MaxValue: aws.String(strconv.FormatInt(int64(r.Max), 10)),
			})
		case tuning.Categorical:
			pr.CategoricalParameterRanges = append(pr.CategoricalParameterRanges, types.CategoricalParameterRange{
				Name:   aws.String(r.Name),
				Values: r.Values,
			})
		}
	}
	return pr
}

func trainingJobDefinition(t *tuning.TrainingSpec, metrics []tuning.MetricPattern) *types.HyperParameterTrainingJobDefinition {
	var defs []types.MetricDefinition
	for _, m := range metrics {
		defs = append(defs, types.MetricDefinition{
			Name:  aws.String(m.Name),
			Regex: aws.String(m.Regex),
		})
	}

	var channels []types.Channel
	for _, ch := range t.Channels {
		channels = append(channels, types.Channel{
			ChannelName: aws.String(ch.Name),
			DataSource: &types.DataSource{
				S3DataSource: &types.S3DataSource{
					S3DataType:             types.S3DataTypeS3Prefix,
					S3Uri:                  aws.String(ch.Location),
					S3DataDistributionType: types.S3DataDistributionFullyReplicated,
				},
			},
			CompressionType: types.CompressionType(ch.Compression),
		})
	}

	return &types.HyperParameterTrainingJobDefinition{
		AlgorithmSpecification: &types.HyperParameterAlgorithmSpecification{
			TrainingImage:     aws.String(t.Image),
			TrainingInputMode: types.TrainingInputModeFile,
			MetricDefinitions: defs,
		},
		RoleArn:               aws.String(t.RoleARN),
		InputDataConfig:       channels,
		OutputDataConfig:      &types.OutputDataConfig{S3OutputPath: aws.String(t.OutputLocation)},
		StaticHyperParameters: t.StaticHyperparameters,
		ResourceConfig: &types.ResourceConfig{
			InstanceType:   types.TrainingInstanceType(t.Compute.InstanceType),
			InstanceCount:  t.Compute.InstanceCount,
			VolumeSizeInGB: t.Compute.VolumeSizeGB,
		},
		StoppingCondition: &types.StoppingCondition{
			MaxRuntimeInSeconds: t.MaxRuntimeSeconds,
		},
	}
}

// formatFloat renders bounds without exponent notation since the service
// rejects scientific notation in range values.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
