// Package codex invokes the Codex CLI as an analysis backend.
package codex

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mcpcatalog/domain"
)

const agentName = "codex"

// Agent implements domain.Agent for the Codex CLI.
type Agent struct {
	timeout time.Duration
}

// New creates a Codex agent with the given invocation bound.
func New(timeout time.Duration) domain.Agent {
	return &Agent{timeout: timeout}
}

func (a *Agent) Name() string { return agentName }

// Available probes for the codex binary on PATH.
func (a *Agent) Available() bool {
	_, err := exec.LookPath(agentName)
	return err == nil
}

// Analyze runs the Codex CLI with the prompt passed inline, bounded by
// the configured timeout.
func (a *Agent) Analyze(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, agentName, "-p", prompt)

	output, runErr := cmd.Output()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			logger.Debugf("[codex] stderr:\n%s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("codex invocation failed: %w", runErr)
	}

	return strings.TrimSpace(string(output)), nil
}
