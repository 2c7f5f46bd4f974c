// Package apt drives apt-get for the steps that follow a topic commit.
package apt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/topic-manager/internal/messages"
)

const aptGet = "apt-get"

// Runner runs an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, forwarding output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args and waits for it to finish.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Client issues apt-get commands through a Runner.
type Client struct {
	runner Runner
}

// New returns a Client using runner.
func New(runner Runner) (*Client, error) {
	if runner == nil {
		return nil, errors.New(messages.AptRunnerRequired)
	}
	return &Client{runner: runner}, nil
}

// Update refreshes the package indexes after the source list changed.
func (c *Client) Update(ctx context.Context) error {
	return c.run(ctx, "update")
}

// Install installs targets such as "gcc-12/stable", allowing downgrades so packages
// from closed topics can return to the stable channel. No targets is a no-op.
func (c *Client) Install(ctx context.Context, targets []string) error {
	if len(targets) == 0 {
		return nil
	}
	args := append([]string{"install", "-y", "--allow-downgrades"}, targets...)
	return c.run(ctx, args...)
}

func (c *Client) run(ctx context.Context, args ...string) error {
	if err := c.runner.Run(ctx, aptGet, args...); err != nil {
		return fmt.Errorf(messages.AptCommandFailedFmt, aptGet+" "+strings.Join(args, " "), err)
	}
	return nil
}
