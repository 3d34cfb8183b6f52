// Package docker drives the Docker CLI to provision the MySQL container.
// It shells out to the docker binary rather than speaking to the daemon
// directly, so the behavior matches what an operator would type by hand.
package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// runFunc executes the docker binary with the given arguments and returns its
// stdout. Injectable so tests can observe the issued commands.
type runFunc func(ctx context.Context, args ...string) (string, error)

// Client issues docker commands.
type Client struct {
	run runFunc
}

// New creates a docker client backed by the docker binary on PATH.
func New() *Client {
	return &Client{run: runDocker}
}

func runDocker(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "docker", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w", msg, err)
		}
		return "", err
	}
	return stdout.String(), nil
}

// Preflight verifies that the docker binary is present and the daemon
// responds. This is a hard precondition: callers should abort on error.
func (c *Client) Preflight(ctx context.Context) error {
	if _, err := c.run(ctx, "info"); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("docker is not installed or not in PATH: %w", err)
		}
		return fmt.Errorf("docker daemon is not running, start Docker and try again: %w", err)
	}
	return nil
}

// ContainerExists reports whether a container with exactly the given name
// exists, running or not.
func (c *Client) ContainerExists(ctx context.Context, name string) (bool, error) {
	out, err := c.run(ctx, "ps", "-a", "--filter", "name="+name, "--format", "{{.Names}}")
	if err != nil {
		return false, fmt.Errorf("failed to list containers: %w", err)
	}

	// The name filter matches substrings, so compare each line exactly.
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == name {
			return true, nil
		}
	}
	return false, nil
}

// Start starts an existing container. Docker treats starting a running
// container as a no-op, so this is safe to call unconditionally.
func (c *Client) Start(ctx context.Context, name string) error {
	if _, err := c.run(ctx, "start", name); err != nil {
		return fmt.Errorf("failed to start container %s: %w", name, err)
	}
	return nil
}

// RunOptions describe the container to create.
type RunOptions struct {
	Name          string
	Image         string
	RootPassword  string
	Database      string
	HostPort      string
	ContainerPort int
}

// Run creates and starts a new detached MySQL container with the root
// password and initial database baked in as environment variables.
func (c *Client) Run(ctx context.Context, opts RunOptions) error {
	args := []string{
		"run", "--name", opts.Name,
		"-e", "MYSQL_ROOT_PASSWORD=" + opts.RootPassword,
		"-e", "MYSQL_DATABASE=" + opts.Database,
		"-p", fmt.Sprintf("%s:%d", opts.HostPort, opts.ContainerPort),
		"-d", opts.Image,
	}
	if _, err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to run container %s: %w", opts.Name, err)
	}
	return nil
}

// Ensure brings the named container up: an existing container is started,
// a missing one is created. An existing container is never recreated, so a
// password or database change only applies to fresh containers.
func (c *Client) Ensure(ctx context.Context, opts RunOptions) error {
	exists, err := c.ContainerExists(ctx, opts.Name)
	if err != nil {
		return err
	}

	if exists {
		if err := c.Start(ctx, opts.Name); err != nil {
			return err
		}
		log.Infof("Started existing MySQL container: %s", opts.Name)
		return nil
	}

	if err := c.Run(ctx, opts); err != nil {
		return err
	}
	log.Infof("Created and started MySQL container: %s", opts.Name)
	return nil
}
