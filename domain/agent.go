package domain

import "context"

// Agent abstracts an AI backend used to author the configuration record.
// Backends are opaque text-in/text-out services; the orchestrator owns
// recovering structure from their output.
type Agent interface {
	// Name returns the agent identifier (e.g. "gemini", "codex", "claude").
	Name() string

	// Available reports whether the backend can be invoked on this host.
	// Probe failures mean "not available", never an error.
	Available() bool

	// Analyze invokes the backend with the analysis prompt and returns its
	// raw textual output. Any failure — timeout, non-zero exit, deferral —
	// routes the caller to fallback synthesis.
	Analyze(ctx context.Context, prompt string) (string, error)
}
