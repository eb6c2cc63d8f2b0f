package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/mcpcatalog/domain"
)

// AnalysisContextBuilder helps create analysis contexts with a fluent interface.
type AnalysisContextBuilder struct {
	*testkit.BaseBuilder
	owner     string
	project   string
	serverID  string
	agentName string
	summary   domain.RepositorySummary
	tree      []domain.TreeEntry
	files     domain.FileContents
}

// NewAnalysisContextBuilder creates a new builder with sensible defaults.
func NewAnalysisContextBuilder() *AnalysisContextBuilder {
	return &AnalysisContextBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		owner:       "acme",
		project:     "widget-mcp",
		serverID:    "widget",
		agentName:   "gemini",
		summary: domain.RepositorySummary{
			Name:        "widget-mcp",
			Description: "A widget MCP server",
			Files:       []string{"package.json", "README.md", "src/index.ts"},
			TokenCount:  1200,
		},
		tree: []domain.TreeEntry{
			{Path: "package.json"},
			{Path: "README.md"},
			{Path: "src/index.ts"},
		},
		files: domain.FileContents{},
	}
}

// WithOwner sets the repository owner.
func (b *AnalysisContextBuilder) WithOwner(owner string) *AnalysisContextBuilder {
	b.owner = owner
	return b
}

// WithProject sets the repository project name.
func (b *AnalysisContextBuilder) WithProject(project string) *AnalysisContextBuilder {
	b.project = project
	return b
}

// WithServerID sets the catalog server identifier.
func (b *AnalysisContextBuilder) WithServerID(serverID string) *AnalysisContextBuilder {
	b.serverID = serverID
	return b
}

// WithAgentName sets the selected agent name.
func (b *AnalysisContextBuilder) WithAgentName(name string) *AnalysisContextBuilder {
	b.agentName = name
	return b
}

// WithSummary sets the repository summary.
func (b *AnalysisContextBuilder) WithSummary(summary domain.RepositorySummary) *AnalysisContextBuilder {
	b.summary = summary
	return b
}

// WithTree sets the file tree entries.
func (b *AnalysisContextBuilder) WithTree(tree []domain.TreeEntry) *AnalysisContextBuilder {
	b.tree = tree
	return b
}

// WithFiles sets the fetched file contents.
func (b *AnalysisContextBuilder) WithFiles(files domain.FileContents) *AnalysisContextBuilder {
	b.files = files
	return b
}

// Build creates the context (satisfies testkit.Builder interface).
func (b *AnalysisContextBuilder) Build() interface{} {
	return b.BuildAnalysisContext()
}

// BuildAnalysisContext creates the context with a concrete return type.
func (b *AnalysisContextBuilder) BuildAnalysisContext() domain.AnalysisContext {
	return domain.AnalysisContext{
		Ref:          domain.RepositoryRef{Owner: b.owner, Project: b.project},
		ServerID:     b.serverID,
		Summary:      b.summary,
		Tree:         b.tree,
		Files:        b.files,
		RunID:        "00000000-0000-0000-0000-000000000000",
		Timestamp:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		AgentName:    b.agentName,
		KeyFileCount: len(b.files),
		Availability: domain.Availability{"gemini": true, "codex": false, "claude": true},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *AnalysisContextBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewAnalysisContextBuilder()
	b.owner = fresh.owner
	b.project = fresh.project
	b.serverID = fresh.serverID
	b.agentName = fresh.agentName
	b.summary = fresh.summary
	b.tree = fresh.tree
	b.files = fresh.files
	return b
}

// Clone creates a deep copy of the AnalysisContextBuilder.
func (b *AnalysisContextBuilder) Clone() testkit.Builder {
	return &AnalysisContextBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		owner:       b.owner,
		project:     b.project,
		serverID:    b.serverID,
		agentName:   b.agentName,
		summary:     b.summary,
		tree:        b.tree,
		files:       b.files,
	}
}
