// Package tuning describes a hyperparameter tuning job: what varies,
// what is fixed, and how the external tuning service must run trials.
package tuning

import (
	"fmt"
	"math"
	"time"
)

// ParameterKind tells how the tuning service samples a searched parameter.
type ParameterKind string

const (
	Continuous  ParameterKind = "continuous"
	Integer     ParameterKind = "integer"
	Categorical ParameterKind = "categorical"
)

// ParameterRange describes a single searched hyperparameter.
// Continuous and integer ranges use Min/Max bounds,
// categorical ranges use an enumerated value set.
type ParameterRange struct {
	Name   string        `json:"name"`
	Kind   ParameterKind `json:"kind"`
	Min    float64       `json:"min,omitempty"`
	Max    float64       `json:"max,omitempty"`
	Values []string      `json:"values,omitempty"`
}

// ResourceLimits bound the amount of work the tuning service may schedule.
type ResourceLimits struct {
	MaxTotalTrials      int32 `json:"max_total_trials"`
	MaxConcurrentTrials int32 `json:"max_concurrent_trials"`
}

// Direction of the objective metric optimization.
type Direction string

const (
	Minimize Direction = "Minimize"
	Maximize Direction = "Maximize"
)

// Objective is the scalar training signal the tuning strategy optimizes.
type Objective struct {
	MetricName string    `json:"metric_name"`
	Direction  Direction `json:"direction"`
}

// MetricPattern extracts a metric value from trial logs.
type MetricPattern struct {
	Name  string `json:"name"`
	Regex string `json:"regex"`
}

// Channel is a named input data split with its storage location.
type Channel struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Compression string `json:"compression,omitempty"`
}

// ComputeSpec describes resources of a single trial.
type ComputeSpec struct {
	InstanceType  string `json:"instance_type"`
	InstanceCount int32  `json:"instance_count"`
	VolumeSizeGB  int32  `json:"volume_size_gb"`
}

// TrainingSpec is the trial skeleton applied identically to every trial.
// Immutable once submitted.
type TrainingSpec struct {
	Image                 string            `json:"image"`
	RoleARN               string            `json:"role_arn"`
	Channels              []Channel         `json:"channels"`
	OutputLocation        string            `json:"output_location"`
	StaticHyperparameters map[string]string `json:"static_hyperparameters,omitempty"`
	Compute               ComputeSpec       `json:"compute"`
	MaxRuntimeSeconds     int32             `json:"max_runtime_seconds"`
}

// Strategies the tuning service understands.
var knownStrategies = map[string]bool{
	"Bayesian":  true,
	"Random":    true,
	"Grid":      true,
	"Hyperband": true,
}

// Config is the declarative description of a tuning job.
type Config struct {
	// Name of the job. When empty a unique name is generated at submission.
	Name string `json:"name,omitempty"`

	// Strategy of the search. Defaults to "Bayesian".
	Strategy string `json:"strategy,omitempty"`

	Ranges    []ParameterRange `json:"ranges"`
	Limits    ResourceLimits   `json:"limits"`
	Objective Objective        `json:"objective"`
	Metrics   []MetricPattern  `json:"metrics"`
	Training  TrainingSpec     `json:"training"`
}

// Validate rejects a malformed config before any network call is made.
func (c *Config) Validate() error {
	if len(c.Ranges) == 0 {
		return fmt.Errorf("search space must contain at least one parameter")
	}
	searched := make(map[string]bool, len(c.Ranges))
	for _, r := range c.Ranges {
		if len(r.Name) == 0 {
			return errRequired("ranges[].name")
		}
		if searched[r.Name] {
			return fmt.Errorf("parameter %q appears in the search space twice", r.Name)
		}
		searched[r.Name] = true
		switch r.Kind {
		case Integer:
			if r.Min != math.Trunc(r.Min) || r.Max != math.Trunc(r.Max) {
				return fmt.Errorf("integer parameter %q must have integer bounds; got [%v, %v]", r.Name, r.Min, r.Max)
			}
			fallthrough
		case Continuous:
			if r.Min >= r.Max {
				return fmt.Errorf("parameter %q must have min < max; got [%v, %v]", r.Name, r.Min, r.Max)
			}
		case Categorical:
			if len(r.Values) == 0 {
				return fmt.Errorf("categorical parameter %q must enumerate at least one value", r.Name)
			}
		default:
			return fmt.Errorf("parameter %q has unknown kind %q", r.Name, r.Kind)
		}
	}
	for name := range c.Training.StaticHyperparameters {
		if searched[name] {
			return fmt.Errorf("parameter %q is both static and searched", name)
		}
	}
	if c.Limits.MaxTotalTrials < 1 {
		return fmt.Errorf("max_total_trials must be positive; got %d", c.Limits.MaxTotalTrials)
	}
	if c.Limits.MaxConcurrentTrials < 1 {
		return fmt.Errorf("max_concurrent_trials must be positive; got %d", c.Limits.MaxConcurrentTrials)
	}
	if c.Limits.MaxConcurrentTrials > c.Limits.MaxTotalTrials {
		return fmt.Errorf("max_concurrent_trials %d exceeds max_total_trials %d",
			c.Limits.MaxConcurrentTrials, c.Limits.MaxTotalTrials)
	}
	if len(c.Strategy) > 0 && !knownStrategies[c.Strategy] {
		return fmt.Errorf("unknown search strategy %q", c.Strategy)
	}
	if len(c.Objective.MetricName) == 0 {
		return errRequired("objective.metric_name")
	}
	if c.Objective.Direction != Minimize && c.Objective.Direction != Maximize {
		return fmt.Errorf("objective direction must be %q or %q; got %q",
			Minimize, Maximize, c.Objective.Direction)
	}
	// the service extracts the objective from trial logs,
	// so it must have an extraction pattern
	var objectiveCovered bool
	for _, m := range c.Metrics {
		if len(m.Name) == 0 || len(m.Regex) == 0 {
			return fmt.Errorf("metric pattern must have both name and regex; got %q %q", m.Name, m.Regex)
		}
		if m.Name == c.Objective.MetricName {
			objectiveCovered = true
		}
	}
	if !objectiveCovered {
		return fmt.Errorf("objective metric %q has no extraction pattern", c.Objective.MetricName)
	}
	return c.Training.validate()
}

func (t *TrainingSpec) validate() error {
	if len(t.Image) == 0 {
		return errRequired("training.image")
	}
	if len(t.RoleARN) == 0 {
		return errRequired("training.role_arn")
	}
	if len(t.Channels) == 0 {
		return fmt.Errorf("training must declare at least one input channel")
	}
	seen := make(map[string]bool, len(t.Channels))
	for _, ch := range t.Channels {
		if len(ch.Name) == 0 {
			return errRequired("training.channels[].name")
		}
		if len(ch.Location) == 0 {
			return fmt.Errorf("channel %q must have a location", ch.Name)
		}
		if seen[ch.Name] {
			return fmt.Errorf("channel %q declared twice", ch.Name)
		}
		seen[ch.Name] = true
	}
	if len(t.OutputLocation) == 0 {
		return errRequired("training.output_location")
	}
	if len(t.Compute.InstanceType) == 0 {
		return errRequired("training.compute.instance_type")
	}
	if t.Compute.InstanceCount < 1 {
		return fmt.Errorf("instance_count must be positive; got %d", t.Compute.InstanceCount)
	}
	if t.Compute.VolumeSizeGB < 1 {
		return fmt.Errorf("volume_size_gb must be positive; got %d", t.Compute.VolumeSizeGB)
	}
	if t.MaxRuntimeSeconds < 1 {
		return fmt.Errorf("max_runtime_seconds must be positive; got %d", t.MaxRuntimeSeconds)
	}
	return nil
}

func errRequired(field string) error {
	return fmt.Errorf("field %q required to be set", field)
}

// JobName appends a timestamp to base to reduce name collision risk.
func JobName(base string) string {
	return fmt.Sprintf("%s-%d", base, time.Now().Unix())
}
