package ingest

import (
	"os/exec"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mcpcatalog/domain"
)

// Choose picks the ingestion strategy for one run. Explicit strategy
// names win; "auto" prefers GitIngest when the claude CLI is on PATH
// and otherwise falls back to the local clone.
func Choose(
	strategy string,
	scratchDir string,
	summaryTimeout, filesTimeout time.Duration,
) domain.Ingester {
	switch strategy {
	case gitIngestName:
		return NewGitIngest(summaryTimeout, filesTimeout)
	case localName:
		return NewLocal(scratchDir)
	}

	if _, err := exec.LookPath(ClaudeBinary); err == nil {
		return NewGitIngest(summaryTimeout, filesTimeout)
	}

	logger.Warnf(
		"%s CLI not found, ingesting via local clone instead of GitIngest",
		ClaudeBinary,
	)
	return NewLocal(scratchDir)
}
