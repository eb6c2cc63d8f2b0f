package domain

import "errors"

var (
	// ErrInvalidReference means the repository URL matched no supported
	// reference form. Fatal: nothing downstream is meaningful without a
	// valid reference.
	ErrInvalidReference = errors.New("invalid repository URL")

	// ErrExtractionFailed means no structured object could be recovered
	// from a backend's raw output. Routes to fallback synthesis.
	ErrExtractionFailed = errors.New("no structured object found in response")

	// ErrAgentUnavailable means no analysis backend could be selected.
	ErrAgentUnavailable = errors.New("no analysis agent available")

	// ErrAgentDeferred is returned by the in-session strategy: it authors
	// nothing itself and defers to template fallback synthesis.
	ErrAgentDeferred = errors.New("agent defers to template fallback")

	// ErrTemplateUnreadable means the template record could not be read.
	// Fatal: there is no configuration without a template.
	ErrTemplateUnreadable = errors.New("template record unreadable")
)
