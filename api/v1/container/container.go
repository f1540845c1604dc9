// Package container drives the local docker CLI for building, pushing and
// smoke-testing the training image.
package container

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/neuromation/hypertune/log"
)

// Image identifies a fully qualified container image.
type Image struct {
	Registry string
	Name     string
	Tag      string
}

// String implements the Stringer interface
func (i Image) String() string {
	ref := i.Name
	if len(i.Registry) > 0 {
		ref = i.Registry + "/" + ref
	}
	if len(i.Tag) > 0 {
		ref += ":" + i.Tag
	}
	return ref
}

// Builder invokes the docker CLI as scoped external-process calls with
// streamed output and captured exit status.
type Builder struct {
	bin    string
	stdout io.Writer
	stderr io.Writer
}

// NewBuilder creates a Builder bound to the docker binary in PATH
func NewBuilder() *Builder {
	return &Builder{
		bin:    "docker",
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Build builds image from contextDir passing baseVersion as a build argument
func (b *Builder) Build(ctx context.Context, image Image, contextDir, baseVersion string) error {
	return b.run(ctx, nil, buildArgs(image, contextDir, baseVersion)...)
}

// Push uploads a locally tagged image to its registry
func (b *Builder) Push(ctx context.Context, image Image) error {
	return b.run(ctx, nil, pushArgs(image)...)
}

// Login authenticates the docker CLI against registry.
// The password travels over stdin, never argv.
func (b *Builder) Login(ctx context.Context, registry, user, password string) error {
	return b.run(ctx, strings.NewReader(password), loginArgs(registry, user)...)
}

// Run executes image locally with the given environment, streaming logs
// until the container exits or ctx is cancelled.
func (b *Builder) Run(ctx context.Context, image Image, env map[string]string) error {
	return b.run(ctx, nil, runArgs(image, env)...)
}

func (b *Builder) run(ctx context.Context, stdin io.Reader, args ...string) error {
	var errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, b.bin, args...)
	cmd.Stdin = stdin
	cmd.Stdout = b.stdout
	cmd.Stderr = io.MultiWriter(b.stderr, &errBuf)
	log.Infof("running %s %s", b.bin, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %s: %s",
			fmt.Sprintf("%s %s", b.bin, strings.Join(args, " ")), err, errBuf.String())
	}
	return nil
}

func buildArgs(image Image, contextDir, baseVersion string) []string {
	return []string{
		"build",
		"--build-arg", "VERSION=" + baseVersion,
		"-t", image.String(),
		contextDir,
	}
}

func pushArgs(image Image) []string {
	return []string{"push", image.String()}
}

func loginArgs(registry, user string) []string {
	return []string{
		"login",
		"--username", user,
		"--password-stdin",
		registry,
	}
}

func runArgs(image Image, env map[string]string) []string {
	args := []string{"run", "--rm"}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-e", k+"="+env[k])
	}
	return append(args, image.String())
}
