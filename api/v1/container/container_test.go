package container

import (
	"context"
	"encoding/base64"
	"io/ioutil"
	"os"
	"reflect"
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

func TestImageString(t *testing.T) {
	testCases := []struct {
		name     string
		image    Image
		expected string
	}{
		{
			"fully qualified",
			Image{Registry: "520713654638.dkr.ecr.us-west-2.amazonaws.com", Name: "cnn-classifier", Tag: "1.15.2"},
			"520713654638.dkr.ecr.us-west-2.amazonaws.com/cnn-classifier:1.15.2",
		},
		{
			"no registry",
			Image{Name: "cnn-classifier", Tag: "latest"},
			"cnn-classifier:latest",
		},
		{
			"no tag",
			Image{Name: "cnn-classifier"},
			"cnn-classifier",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.image.String(); got != tc.expected {
				t.Fatalf("got %q; expected %q", got, tc.expected)
			}
		})
	}
}

func TestBuildArgs(t *testing.T) {
	image := Image{Name: "cnn-classifier", Tag: "1.15.2"}
	got := buildArgs(image, ".", "1.15.2")
	expected := []string{"build", "--build-arg", "VERSION=1.15.2", "-t", "cnn-classifier:1.15.2", "."}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("got args %v; expected %v", got, expected)
	}
}

func TestRunArgs(t *testing.T) {
	image := Image{Name: "cnn-classifier", Tag: "1.15.2"}
	env := map[string]string{
		"HP_LEARNING_RATE": "0.0001",
		"CHANNEL_TRAIN":    "s3://bucket/data/cnn-tuning/train/train.gob.gz",
	}
	got := runArgs(image, env)
	// env flags must be deterministic
	expected := []string{
		"run", "--rm",
		"-e", "CHANNEL_TRAIN=s3://bucket/data/cnn-tuning/train/train.gob.gz",
		"-e", "HP_LEARNING_RATE=0.0001",
		"cnn-classifier:1.15.2",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("got args %v; expected %v", got, expected)
	}
}

func TestLoginArgs(t *testing.T) {
	got := loginArgs("520713654638.dkr.ecr.us-west-2.amazonaws.com", "AWS")
	expected := []string{"login", "--username", "AWS", "--password-stdin", "520713654638.dkr.ecr.us-west-2.amazonaws.com"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("got args %v; expected %v", got, expected)
	}
}

func TestBuilderRun_Negative(t *testing.T) {
	b := &Builder{
		bin:    "no-such-binary-here",
		stdout: ioutil.Discard,
		stderr: ioutil.Discard,
	}
	err := b.Push(context.Background(), Image{Name: "cnn-classifier"})
	if err == nil {
		t.Fatalf("expected to get err; got nil instead")
	}
	if !strings.Contains(err.Error(), "failed") {
		t.Fatalf("expected failure err; got: %q", err)
	}
}

func TestParseAuthData(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("AWS:secret"))
	auth, err := parseAuthData(token, "https://520713654638.dkr.ecr.us-west-2.amazonaws.com")
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if auth.User != "AWS" || auth.Password != "secret" {
		t.Fatalf("got creds %q/%q; expected AWS/secret", auth.User, auth.Password)
	}
	if auth.Host != "520713654638.dkr.ecr.us-west-2.amazonaws.com" {
		t.Fatalf("got host %q", auth.Host)
	}
}

func TestParseAuthData_Negative(t *testing.T) {
	if _, err := parseAuthData("%%%", "https://host"); err == nil {
		t.Fatalf("expected to get err for bad base64; got nil instead")
	}
	token := base64.StdEncoding.EncodeToString([]byte("no-colon"))
	if _, err := parseAuthData(token, "https://host"); err == nil {
		t.Fatalf("expected to get err for missing separator; got nil instead")
	}
}
