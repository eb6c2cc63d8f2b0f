// Package gemini invokes the Gemini CLI as an analysis backend.
package gemini

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mcpcatalog/domain"
)

const (
	agentName      = "gemini"
	promptFileMode = 0o600
)

// Agent implements domain.Agent for the Gemini CLI.
type Agent struct {
	timeout time.Duration
}

// New creates a Gemini agent with the given invocation bound.
func New(timeout time.Duration) domain.Agent {
	return &Agent{timeout: timeout}
}

func (a *Agent) Name() string { return agentName }

// Available probes for the gemini binary on PATH.
func (a *Agent) Available() bool {
	_, err := exec.LookPath(agentName)
	return err == nil
}

// Analyze writes the prompt to a file and runs the Gemini CLI against
// it. The call is bounded by the configured timeout; stdout is returned
// raw for the caller to extract structure from.
func (a *Agent) Analyze(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	promptFile, err := os.CreateTemp("", "gemini-prompt-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create prompt file: %w", err)
	}
	defer func() { _ = os.Remove(promptFile.Name()) }()

	if _, writeErr := promptFile.WriteString(prompt); writeErr != nil {
		_ = promptFile.Close()
		return "", fmt.Errorf("failed to write prompt file: %w", writeErr)
	}
	if closeErr := promptFile.Close(); closeErr != nil {
		return "", fmt.Errorf("failed to close prompt file: %w", closeErr)
	}
	if chmodErr := os.Chmod(promptFile.Name(), promptFileMode); chmodErr != nil {
		logger.Debugf("[gemini] Failed to restrict prompt file mode: %v", chmodErr)
	}

	cmd := exec.CommandContext(ctx, agentName, "-y", "-p", "architect", "-f", promptFile.Name())

	output, runErr := cmd.Output()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			logger.Debugf("[gemini] stderr:\n%s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("gemini invocation failed: %w", runErr)
	}

	return strings.TrimSpace(string(output)), nil
}
