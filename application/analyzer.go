package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mcpcatalog/domain"
	agentPkg "github.com/rios0rios0/mcpcatalog/infrastructure/agent"
	writerPkg "github.com/rios0rios0/mcpcatalog/infrastructure/writer"
)

const scratchFileMode = 0o600

// IngesterFactory creates the ingestion strategy for one run, rooted at
// that run's scratch directory.
type IngesterFactory func(scratchDir string) domain.Ingester

// AnalyzerService runs the full analysis pipeline for one repository:
// resolve reference -> ingest -> select key files -> invoke agent ->
// synthesize -> write. Stages are strictly sequential; external calls
// are the only suspension points.
type AnalyzerService struct {
	agents      *agentPkg.Registry
	newIngester IngesterFactory
	templates   domain.TemplateLoader
	synthesizer *Synthesizer
	writer      *writerPkg.Writer
}

// NewAnalyzerService wires the pipeline stages together.
func NewAnalyzerService(
	agents *agentPkg.Registry,
	newIngester IngesterFactory,
	templates domain.TemplateLoader,
	synthesizer *Synthesizer,
	writer *writerPkg.Writer,
) *AnalyzerService {
	return &AnalyzerService{
		agents:      agents,
		newIngester: newIngester,
		templates:   templates,
		synthesizer: synthesizer,
		writer:      writer,
	}
}

// RunOptions holds per-run options from the CLI.
type RunOptions struct {
	OutputPath    string // overrides the default output location
	AgentOverride string // forces a backend, honored only when available
	Verbose       bool
}

// RunResult summarizes a completed run for user-facing reporting.
type RunResult struct {
	OutputPath         string
	AgentName          string
	IngesterName       string
	FellBack           bool
	ToolCount          int
	Tags               []string
	PriorityDeployment string
}

// Run executes one analysis. Only an invalid reference, an unreadable
// template, or a failed write abort the run; every other failure
// degrades and the run still produces a usable record.
func (s *AnalyzerService) Run(
	ctx context.Context,
	rawURL string,
	serverID string,
	opts RunOptions,
) (*RunResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	ref, err := domain.ParseRepositoryURL(rawURL)
	if err != nil {
		return nil, err
	}

	// The template is both the prompt's shape reference and the fallback
	// output; without it there is no configuration, so fail before any
	// external call.
	template, err := s.templates.Load()
	if err != nil {
		return nil, err
	}

	scratchDir, err := os.MkdirTemp("", "mcp_analysis_*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(scratchDir) }()

	availability := s.agents.Probe()
	selected, selectErr := s.agents.Select(availability, opts.AgentOverride)
	agentName := "none"
	if selectErr == nil {
		agentName = selected.Name()
	}
	logger.Infof("Using AI agent: %s", agentName)

	ingester := s.newIngester(scratchDir)
	logger.Infof("Ingesting via %s", ingester.Name())

	logger.Info("Step 1: fetching repository summary...")
	summary := ingester.FetchSummary(ctx, ref)

	logger.Info("Step 2: fetching repository tree...")
	tree := ingester.FetchTree(ctx, ref)

	logger.Info("Step 3: selecting key files...")
	keyFiles := domain.SelectKeyFiles(tree, summary)

	logger.Infof("Step 4: extracting %d key files...", len(keyFiles))
	files := domain.FileContents{}
	if len(keyFiles) > 0 {
		files = ingester.FetchFiles(ctx, ref, keyFiles)
	}

	analysisCtx := domain.AnalysisContext{
		Ref:          ref,
		ServerID:     serverID,
		Summary:      summary,
		Tree:         tree,
		Files:        files,
		RunID:        uuid.NewString(),
		Timestamp:    time.Now(),
		AgentName:    agentName,
		KeyFileCount: len(keyFiles),
		Availability: availability,
	}

	contextPath := s.persistScratch(scratchDir, "analysis_context.json", analysisCtx)
	templatePath := s.persistScratch(scratchDir, "template.json", template)

	logger.Infof("Step 5: generating configuration via %s...", agentName)
	extracted := s.invokeAgent(ctx, selected, selectErr, analysisCtx, contextPath, templatePath)

	record := s.synthesizer.Synthesize(analysisCtx, extracted, template)

	outputPath, writeErr := s.writer.Write(record, serverID, opts.OutputPath)
	if writeErr != nil {
		return nil, writeErr
	}

	return buildResult(record, outputPath, agentName, ingester.Name(), extracted == nil), nil
}

// invokeAgent runs the selected backend and extracts its structured
// result. Any failure returns nil, routing synthesis to the fallback
// path; the design deliberately does not retry or cascade backends.
func (s *AnalyzerService) invokeAgent(
	ctx context.Context,
	selected domain.Agent,
	selectErr error,
	analysisCtx domain.AnalysisContext,
	contextPath string,
	templatePath string,
) domain.ServerConfiguration {
	if selectErr != nil {
		logger.Warnf("No analysis agent available: %v; using template fallback", selectErr)
		return nil
	}

	prompt := BuildPrompt(analysisCtx, contextPath, templatePath)

	raw, err := selected.Analyze(ctx, prompt)
	if err != nil {
		if errors.Is(err, domain.ErrAgentDeferred) {
			logger.Infof("Agent %s defers to template fallback", selected.Name())
		} else {
			logger.Warnf("Agent %s failed: %v; using template fallback", selected.Name(), err)
		}
		return nil
	}

	payload, extractErr := domain.ExtractJSONObject(raw)
	if extractErr != nil {
		logger.Warnf(
			"Could not extract configuration from %s response: %v; using template fallback",
			selected.Name(), extractErr,
		)
		return nil
	}

	return domain.ServerConfiguration(payload)
}

// persistScratch writes a JSON artifact into the scratch directory for
// the agent to read. Failures only cost the agent context, so they are
// warnings, not errors.
func (s *AnalyzerService) persistScratch(scratchDir, name string, v any) string {
	path := filepath.Join(scratchDir, name)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Warnf("Failed to encode scratch artifact %s: %v", name, err)
		return ""
	}
	if writeErr := os.WriteFile(path, data, scratchFileMode); writeErr != nil {
		logger.Warnf("Failed to write scratch artifact %s: %v", name, writeErr)
		return ""
	}
	return path
}

func buildResult(
	record domain.ServerConfiguration,
	outputPath string,
	agentName string,
	ingesterName string,
	fellBack bool,
) *RunResult {
	result := &RunResult{
		OutputPath:   outputPath,
		AgentName:    agentName,
		IngesterName: ingesterName,
		FellBack:     fellBack,
	}

	meta := record.Metadata()
	if meta == nil {
		return result
	}

	if tools, ok := meta["tools"].([]any); ok {
		result.ToolCount = len(tools)
	}
	if tags, ok := meta["tags"].([]any); ok {
		for _, tag := range tags {
			if s, isString := tag.(string); isString {
				result.Tags = append(result.Tags, s)
			}
		}
	}
	if tags, ok := meta["tags"].([]string); ok {
		result.Tags = tags
	}
	if priority, ok := meta["priority_deployment"].(string); ok {
		result.PriorityDeployment = priority
	}

	return result
}
