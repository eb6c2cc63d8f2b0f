// Package claude holds the in-session analysis strategy. Analysis runs
// are expected to execute inside a Claude session, so this backend is
// always considered available and acts as the ultimate selection
// fallback.
package claude

import (
	"context"

	"github.com/rios0rios0/mcpcatalog/domain"
)

const agentName = "claude"

// Agent implements domain.Agent as the always-available backend.
type Agent struct{}

// New creates the in-session agent.
func New() domain.Agent {
	return &Agent{}
}

func (a *Agent) Name() string { return agentName }

// Available always reports true: the in-session backend needs no
// external binary and guarantees a non-empty selection.
func (a *Agent) Available() bool { return true }

// Analyze performs no external call. Re-invoking the session that is
// already running the analysis would recurse, so the strategy authors
// nothing and defers to template fallback synthesis.
func (a *Agent) Analyze(_ context.Context, _ string) (string, error) {
	return "", domain.ErrAgentDeferred
}
