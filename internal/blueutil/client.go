// Package blueutil implements the control-process gateway by shelling out
// to the blueutil command-line utility.
package blueutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/darkermage/alfred-bluetooth/internal/bluetooth"
)

//go:generate mockgen -destination=mock_blueutil.go -package=blueutil github.com/darkermage/alfred-bluetooth/internal/blueutil Runner

// Runner executes the blueutil binary and captures its output. Only a
// failure to launch the process is an error; a non-zero exit is reported
// through the captured output the same way blueutil reports it to a user.
type Runner interface {
	Run(ctx context.Context, path string, args []string) (stdout, stderr []byte, err error)
}

// execRunner runs the binary as a blocking subprocess. No timeout is
// imposed; callers needing bounded latency must cancel the context.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, path string, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// blueutil's exit code carries no information the caller acts on;
		// only a failed launch is surfaced.
		err = nil
	}

	return stdout.Bytes(), stderr.Bytes(), err
}

// Client implements bluetooth.Gateway against a blueutil binary.
type Client struct {
	path   string
	runner Runner
	log    zerolog.Logger
}

// NewClient creates a client that invokes the blueutil binary at path. The
// path is either a bare name resolved via $PATH or an absolute location
// from configuration.
func NewClient(path string, log zerolog.Logger) *Client {
	return &Client{path: path, runner: execRunner{}, log: log}
}

// ListPaired runs `blueutil --paired` and parses every non-empty output
// line into a device record. A single malformed line fails the whole
// listing.
func (c *Client) ListPaired(ctx context.Context) ([]bluetooth.Device, error) {
	stdout, _, err := c.run(ctx, "--paired")
	if err != nil {
		return nil, fmt.Errorf("failed to list paired devices: %w", err)
	}

	var devices []bluetooth.Device
	for _, line := range strings.Split(string(stdout), "\n") {
		if line == "" {
			continue
		}

		device, err := parseRecord(line)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	return devices, nil
}

// Connect runs `blueutil --connect <address>`. Success means blueutil was
// launched; whether the device actually connected is not verified.
func (c *Client) Connect(ctx context.Context, address string) error {
	if _, _, err := c.run(ctx, "--connect", address); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return nil
}

// Disconnect runs `blueutil --disconnect <address> --info <address>`. The
// trailing --info nudges blueutil to refresh the state it reports for the
// device.
func (c *Client) Disconnect(ctx context.Context, address string) error {
	if _, _, err := c.run(ctx, "--disconnect", address, "--info", address); err != nil {
		return fmt.Errorf("failed to disconnect from %s: %w", address, err)
	}
	return nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, []byte, error) {
	stdout, stderr, err := c.runner.Run(ctx, c.path, args)

	c.log.Debug().
		Str("args", strings.Join(args, " ")).
		Str("stdout", string(stdout)).
		Str("stderr", string(stderr)).
		Msg("blueutil invoked")

	return stdout, stderr, err
}
