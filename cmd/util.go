package cmd

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/neuromation/hypertune/api/v1/container"
	"github.com/neuromation/hypertune/api/v1/tuning"
	"github.com/neuromation/hypertune/config"
)

func bindYaml(path string, v interface{}) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read file %q: %s", path, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("unable to parse yaml file %q: %s", path, err)
	}
	return nil
}

func imageFromConfig(cfg *config.Config) container.Image {
	return container.Image{
		Registry: cfg.Registry,
		Name:     cfg.Image,
		Tag:      cfg.BaseVersion,
	}
}

// smokeEnv builds the environment of a local smoke-test run: the same
// channel locations the cloud job would receive plus one fixed value for
// every hyperparameter, searched parameters pinned to their lower bound.
func smokeEnv(tc *tuning.Config) map[string]string {
	env := make(map[string]string)
	for k, v := range tc.Training.StaticHyperparameters {
		env[hyperparameterEnvName(k)] = v
	}
	for _, r := range tc.Ranges {
		switch r.Kind {
		case tuning.Categorical:
			if len(r.Values) > 0 {
				env[hyperparameterEnvName(r.Name)] = r.Values[0]
			}
		case tuning.Integer:
			env[hyperparameterEnvName(r.Name)] = strconv.FormatInt(int64(r.Min), 10)
		default:
			env[hyperparameterEnvName(r.Name)] = strconv.FormatFloat(r.Min, 'f', -1, 64)
		}
	}
	for _, ch := range tc.Training.Channels {
		env["CHANNEL_"+strings.ToUpper(ch.Name)] = ch.Location
	}
	return env
}

func hyperparameterEnvName(name string) string {
	return "HP_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
