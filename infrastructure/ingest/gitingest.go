// Package ingest provides the repository ingestion strategies: the
// GitIngest MCP collaborator (transported over one-shot claude CLI
// invocations) and a local go-git clone.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mcpcatalog/domain"
)

const (
	gitIngestName = "gitingest"

	// ClaudeBinary is the CLI the GitIngest strategy shells out to.
	ClaudeBinary = "claude"
)

// Runner executes an external command and returns its stdout. Injected
// in tests; the default shells out via os/exec.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	output, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debugf("[%s] stderr:\n%s", gitIngestName, string(exitErr.Stderr))
		}
		return nil, err
	}
	return output, nil
}

// GitIngest implements domain.Ingester on top of the GitIngest MCP
// tools (git_summary, git_tree, git_files). Every operation degrades
// instead of failing.
type GitIngest struct {
	summaryTimeout time.Duration
	filesTimeout   time.Duration
	run            Runner
}

// NewGitIngest creates the GitIngest strategy with the given call bounds.
func NewGitIngest(summaryTimeout, filesTimeout time.Duration) *GitIngest {
	return NewGitIngestWithRunner(summaryTimeout, filesTimeout, defaultRunner)
}

// NewGitIngestWithRunner creates the strategy with an injected command
// runner.
func NewGitIngestWithRunner(
	summaryTimeout, filesTimeout time.Duration,
	run Runner,
) *GitIngest {
	return &GitIngest{
		summaryTimeout: summaryTimeout,
		filesTimeout:   filesTimeout,
		run:            run,
	}
}

func (g *GitIngest) Name() string { return gitIngestName }

// FetchSummary calls the git_summary tool, bounded by the summary
// timeout. On any failure it returns a degraded summary carrying the
// reason in its description.
func (g *GitIngest) FetchSummary(
	ctx context.Context,
	ref domain.RepositoryRef,
) domain.RepositorySummary {
	prompt := fmt.Sprintf(
		"Use GitIngest MCP git_summary tool to analyze repository %s/%s. "+
			"Return only the raw JSON response from the tool, no additional text or formatting.",
		ref.Owner, ref.Project,
	)

	raw, err := g.invoke(ctx, g.summaryTimeout, prompt)
	if err != nil {
		logger.Warnf("GitIngest summary call failed: %v", err)
		return degradedSummary(ref, failureReason(err, "GitIngest call failed"))
	}

	var summary domain.RepositorySummary
	if extractErr := domain.ExtractJSONInto(raw, &summary); extractErr != nil {
		logger.Warnf("Could not extract JSON from GitIngest summary response: %v", extractErr)
		return degradedSummary(ref, "JSON parse failed")
	}

	if summary.Name == "" {
		summary.Name = fmt.Sprintf("%s/%s", ref.Owner, ref.Project)
	}
	return summary
}

// FetchTree calls the git_tree tool with the same timeout and
// degradation policy; the degraded value is an empty tree.
func (g *GitIngest) FetchTree(
	ctx context.Context,
	ref domain.RepositoryRef,
) []domain.TreeEntry {
	prompt := fmt.Sprintf(
		"Use GitIngest MCP git_tree tool to get the tree structure of repository %s/%s. "+
			"Return only the raw JSON response from the tool, no additional text or formatting.",
		ref.Owner, ref.Project,
	)

	raw, err := g.invoke(ctx, g.summaryTimeout, prompt)
	if err != nil {
		logger.Warnf("GitIngest tree call failed: %v", err)
		return nil
	}

	var payload struct {
		Tree []domain.TreeEntry `json:"tree"`
	}
	if extractErr := domain.ExtractJSONInto(raw, &payload); extractErr != nil {
		logger.Warnf("Could not extract JSON from GitIngest tree response: %v", extractErr)
		return nil
	}

	return payload.Tree
}

// FetchFiles calls the git_files tool for the whole batch in one
// invocation, bounded by the files timeout. A response is accepted only
// if it parses as an object; requested paths absent from that object
// are treated as not retrieved.
func (g *GitIngest) FetchFiles(
	ctx context.Context,
	ref domain.RepositoryRef,
	paths []string,
) domain.FileContents {
	if len(paths) == 0 {
		return domain.FileContents{}
	}

	pathsJSON, err := json.Marshal(paths)
	if err != nil {
		logger.Warnf("Failed to encode file path batch: %v", err)
		return domain.FileContents{}
	}

	prompt := fmt.Sprintf(
		"Use GitIngest MCP git_files tool to get contents of files %s from repository %s/%s. "+
			"Return only the raw JSON response from the tool, no additional text or formatting.",
		string(pathsJSON), ref.Owner, ref.Project,
	)

	raw, invokeErr := g.invoke(ctx, g.filesTimeout, prompt)
	if invokeErr != nil {
		logger.Warnf("GitIngest files call failed: %v", invokeErr)
		return domain.FileContents{}
	}

	payload, extractErr := domain.ExtractJSONObject(raw)
	if extractErr != nil {
		logger.Warnf("Could not extract JSON from GitIngest files response: %v", extractErr)
		return domain.FileContents{}
	}

	contents := make(domain.FileContents, len(paths))
	for _, path := range paths {
		if text, ok := payload[path].(string); ok {
			contents[path] = text
		}
	}
	return contents
}

func (g *GitIngest) invoke(
	ctx context.Context,
	timeout time.Duration,
	prompt string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := g.run(ctx, ClaudeBinary, "-p", prompt)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

func degradedSummary(ref domain.RepositoryRef, reason string) domain.RepositorySummary {
	return domain.RepositorySummary{
		Name:        fmt.Sprintf("%s/%s", ref.Owner, ref.Project),
		Description: reason,
	}
}

func failureReason(err error, fallback string) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "Analysis timed out"
	}
	return fallback
}
