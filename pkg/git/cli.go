// Package git wraps the git binary on PATH for the two operations webstart
// needs: shallow clones and local configuration lookups.
package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

type CLI struct{}

func NewCLI() *CLI {
	return &CLI{}
}

// Clone performs a shallow single-revision clone of url into dir.
func (c *CLI) Clone(ctx context.Context, url, dir string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", url, dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "git clone failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}

// ConfigValue reads a single value from the local git configuration.
func (c *CLI) ConfigValue(ctx context.Context, key string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", key)
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "git config --get %s", key)
	}
	return strings.TrimSpace(string(output)), nil
}
