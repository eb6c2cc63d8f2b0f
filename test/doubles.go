// Package testdoubles provides test doubles (spies, stubs, dummies) for
// domain interfaces. These are hand-crafted implementations — no mock
// frameworks.
package testdoubles

import (
	"context"

	"github.com/rios0rios0/mcpcatalog/domain"
)

// ---------------------------------------------------------------------------
// SpyAgent
// ---------------------------------------------------------------------------

// SpyAgent implements domain.Agent as a configurable spy. Configure the
// response fields for the behavior your test exercises, then inspect
// the call-tracking fields.
type SpyAgent struct {
	// --- identity ---
	AgentName string

	// --- Available ---
	AvailableResult bool
	// spy: probe count
	ProbeCalls int

	// --- Analyze ---
	AnalyzeRaw string
	AnalyzeErr error
	// spy: prompts received
	Prompts []string
}

var _ domain.Agent = (*SpyAgent)(nil)

func (a *SpyAgent) Name() string { return a.AgentName }

func (a *SpyAgent) Available() bool {
	a.ProbeCalls++
	return a.AvailableResult
}

func (a *SpyAgent) Analyze(_ context.Context, prompt string) (string, error) {
	a.Prompts = append(a.Prompts, prompt)
	return a.AnalyzeRaw, a.AnalyzeErr
}

// ---------------------------------------------------------------------------
// SpyIngester
// ---------------------------------------------------------------------------

// SpyIngester implements domain.Ingester as a configurable spy.
type SpyIngester struct {
	// --- identity ---
	IngesterName string

	// --- responses ---
	Summary domain.RepositorySummary
	Tree    []domain.TreeEntry
	Files   domain.FileContents

	// spy: inputs received
	SummaryRefs []domain.RepositoryRef
	TreeRefs    []domain.RepositoryRef
	FileBatches [][]string
}

var _ domain.Ingester = (*SpyIngester)(nil)

func (i *SpyIngester) Name() string {
	if i.IngesterName == "" {
		return "spy"
	}
	return i.IngesterName
}

func (i *SpyIngester) FetchSummary(
	_ context.Context,
	ref domain.RepositoryRef,
) domain.RepositorySummary {
	i.SummaryRefs = append(i.SummaryRefs, ref)
	return i.Summary
}

func (i *SpyIngester) FetchTree(
	_ context.Context,
	ref domain.RepositoryRef,
) []domain.TreeEntry {
	i.TreeRefs = append(i.TreeRefs, ref)
	return i.Tree
}

func (i *SpyIngester) FetchFiles(
	_ context.Context,
	_ domain.RepositoryRef,
	paths []string,
) domain.FileContents {
	i.FileBatches = append(i.FileBatches, paths)
	if i.Files == nil {
		return domain.FileContents{}
	}
	return i.Files
}

// ---------------------------------------------------------------------------
// StubTemplateLoader
// ---------------------------------------------------------------------------

// StubTemplateLoader implements domain.TemplateLoader with a fixed
// record or error.
type StubTemplateLoader struct {
	Record domain.ServerConfiguration
	Err    error
}

var _ domain.TemplateLoader = (*StubTemplateLoader)(nil)

func (l *StubTemplateLoader) Load() (domain.ServerConfiguration, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Record, nil
}

// ---------------------------------------------------------------------------
// DummyAgent — satisfies the interface but does nothing
// ---------------------------------------------------------------------------

// DummyAgent is a no-op implementation of domain.Agent.
type DummyAgent struct{}

var _ domain.Agent = (*DummyAgent)(nil)

func (d *DummyAgent) Name() string    { return "dummy" }
func (d *DummyAgent) Available() bool { return false }

func (d *DummyAgent) Analyze(_ context.Context, _ string) (string, error) {
	return "", nil
}

// TemplateRecord returns a minimal template with all required sections,
// for synthesis and pipeline tests.
func TemplateRecord() domain.ServerConfiguration {
	record := domain.ServerConfiguration{}
	for _, section := range domain.RequiredSections {
		record[section] = map[string]any{}
	}
	record["metadata"] = map[string]any{
		"server_id":        "",
		"display_name":     "",
		"version":          "1.0.0",
		"tools":            []any{},
		"resources":        []any{},
		"tags":             []any{},
		"use_cases":        []any{},
		"analysis_version": "1.0.0",
	}
	record["monitoring"] = map[string]any{
		"health_check": map[string]any{"endpoint": "/health"},
	}
	record["maintenance"] = map[string]any{
		"update_frequency": "monthly",
	}
	record["deployment"] = map[string]any{
		"local": map[string]any{"available": false},
	}
	record["automation"] = map[string]any{
		"global_instructions": map[string]any{"enabled": false},
	}
	record["integration"] = map[string]any{
		"mcp_servers": []any{},
	}
	record["security"] = map[string]any{
		"authentication": map[string]any{"methods": []any{"api_key"}},
	}
	return record
}
