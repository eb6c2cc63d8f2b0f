package cmd

import (
	"time"

	"go.uber.org/dig"

	"github.com/rios0rios0/mcpcatalog/application"
	"github.com/rios0rios0/mcpcatalog/config"
	"github.com/rios0rios0/mcpcatalog/domain"
	agentPkg "github.com/rios0rios0/mcpcatalog/infrastructure/agent"
	"github.com/rios0rios0/mcpcatalog/infrastructure/agent/claude"
	"github.com/rios0rios0/mcpcatalog/infrastructure/agent/codex"
	"github.com/rios0rios0/mcpcatalog/infrastructure/agent/gemini"
	"github.com/rios0rios0/mcpcatalog/infrastructure/ingest"
	templatePkg "github.com/rios0rios0/mcpcatalog/infrastructure/template"
	writerPkg "github.com/rios0rios0/mcpcatalog/infrastructure/writer"
)

// buildContainer wires config -> registries -> pipeline stages ->
// analyzer service, bottom-up.
func buildContainer(cfg *config.Config) (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		func() *config.Config { return cfg },
		buildAgentRegistry,
		buildIngesterFactory,
		func(c *config.Config) domain.TemplateLoader {
			return templatePkg.NewLoader(c.Template)
		},
		func(c *config.Config) *writerPkg.Writer {
			return writerPkg.New(c.OutputDir)
		},
		application.NewSynthesizer,
		application.NewAnalyzerService,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func buildAgentRegistry(cfg *config.Config) *agentPkg.Registry {
	timeout := time.Duration(cfg.Agents.TimeoutSeconds) * time.Second

	registry := agentPkg.NewRegistry(cfg.Agents.Preference)
	registry.Register(gemini.New(timeout))
	registry.Register(codex.New(timeout))
	registry.Register(claude.New())
	return registry
}

func buildIngesterFactory(cfg *config.Config) application.IngesterFactory {
	strategy := cfg.Ingestion.Strategy
	if ingesterOverride != "" {
		strategy = ingesterOverride
	}

	summaryTimeout := time.Duration(cfg.Ingestion.SummaryTimeoutSeconds) * time.Second
	filesTimeout := time.Duration(cfg.Ingestion.FilesTimeoutSeconds) * time.Second

	return func(scratchDir string) domain.Ingester {
		return ingest.Choose(strategy, scratchDir, summaryTimeout, filesTimeout)
	}
}

// loadConfig resolves the effective configuration: an explicit --config
// wins, then a discovered file, then pure defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	if found, err := config.FindConfigFile(); err == nil {
		return config.Load(found)
	}

	return config.Default(), nil
}
