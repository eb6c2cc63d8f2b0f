package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mcpcatalog/application"
	"github.com/rios0rios0/mcpcatalog/domain"
	testdoubles "github.com/rios0rios0/mcpcatalog/test"
	"github.com/rios0rios0/mcpcatalog/test/domain/entitybuilders"
)

func TestSynthesizer_Synthesize(t *testing.T) {
	t.Parallel()

	t.Run("should derive the record from the template when analysis failed", func(t *testing.T) {
		t.Parallel()

		// given no extracted record
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().BuildAnalysisContext()
		template := testdoubles.TemplateRecord()

		// when
		record := s.Synthesize(analysisCtx, nil, template)

		// then
		meta := record.Metadata()
		assert.Equal(t, "fallback_generator", meta["generated_by"])
		assert.Equal(t, analysisCtx.Timestamp.Format(time.RFC3339), meta["analysis_date"])
		for _, section := range domain.RequiredSections {
			assert.Contains(t, record, section)
		}
	})

	t.Run("should never mutate the template", func(t *testing.T) {
		t.Parallel()

		// given
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().BuildAnalysisContext()
		template := testdoubles.TemplateRecord()

		// when
		_ = s.Synthesize(analysisCtx, nil, template)

		// then
		meta := template.Metadata()
		assert.Equal(t, "", meta["server_id"])
		assert.NotContains(t, meta, "generated_by")
	})

	t.Run("should keep agent-authored values and fill only the gaps", func(t *testing.T) {
		t.Parallel()

		// given an extracted record with a description but no server_id
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().BuildAnalysisContext()
		extracted := domain.ServerConfiguration{
			"metadata": map[string]any{
				"description": "Authored by the agent",
			},
		}

		// when
		record := s.Synthesize(analysisCtx, extracted, testdoubles.TemplateRecord())

		// then
		meta := record.Metadata()
		assert.Equal(t, "Authored by the agent", meta["description"])
		assert.Equal(t, "widget", meta["server_id"])
		assert.Equal(t, "acme", meta["namespace"])
		assert.Equal(t, "widget-mcp", meta["package"])
		assert.NotContains(t, meta, "generated_by")
	})

	t.Run("should title-case the project into a display name", func(t *testing.T) {
		t.Parallel()

		// given
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().
			WithProject("widget_mcp-tools").
			BuildAnalysisContext()

		// when
		record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

		// then
		assert.Equal(t, "Widget Mcp Tools MCP Server", record.Metadata()["display_name"])
	})

	t.Run("should read version and description from package.json", func(t *testing.T) {
		t.Parallel()

		// given
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().
			WithFiles(domain.FileContents{
				"package.json": `{"name": "widget-mcp", "version": "2.3.4", "description": "From the manifest"}`,
			}).
			BuildAnalysisContext()

		// when
		record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

		// then
		meta := record.Metadata()
		assert.Equal(t, "2.3.4", meta["version"])
		assert.Equal(t, "From the manifest", meta["description"])
	})

	t.Run("should fall back to the ingestion summary for the description", func(t *testing.T) {
		t.Parallel()

		// given no package.json
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().
			WithSummary(domain.RepositorySummary{Description: "From the summary"}).
			BuildAnalysisContext()

		// when
		record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

		// then
		assert.Equal(t, "From the summary", record.Metadata()["description"])
	})

	t.Run("should tag every record mcp-server plus name-derived tags", func(t *testing.T) {
		t.Parallel()

		// given
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().
			WithProject("git-db-api-server").
			BuildAnalysisContext()

		// when
		record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

		// then
		assert.Equal(t, []string{"mcp-server", "git", "database", "api"}, record.Metadata()["tags"])
	})

	t.Run("should apply the deployment precedence npm over docker over local", func(t *testing.T) {
		t.Parallel()

		// given
		s := application.NewSynthesizer()
		cases := []struct {
			name     string
			files    domain.FileContents
			expected string
		}{
			{"npm wins over docker", domain.FileContents{"package.json": "{}", "Dockerfile": "FROM node"}, "npm"},
			{"docker when no manifest", domain.FileContents{"Dockerfile": "FROM node"}, "docker"},
			{"compose counts as docker", domain.FileContents{"docker-compose.yml": "services:"}, "docker"},
			{"any file means local", domain.FileContents{"README.md": "# Widget"}, "local"},
			{"nothing means manual", domain.FileContents{}, "manual"},
		}

		for _, tc := range cases {
			// when
			analysisCtx := entitybuilders.NewAnalysisContextBuilder().
				WithFiles(tc.files).
				BuildAnalysisContext()
			record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

			// then
			assert.Equal(t, tc.expected, record.Metadata()["priority_deployment"], tc.name)
		}
	})

	t.Run("should assess maturity from version and docs", func(t *testing.T) {
		t.Parallel()

		// given a v0 package with changelog and readme
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().
			WithFiles(domain.FileContents{
				"package.json": `{"version": "0.4.1"}`,
				"CHANGELOG.md": "## 0.4.1",
				"README.md":    "# Widget",
			}).
			BuildAnalysisContext()

		// when
		record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

		// then
		maturity, ok := record.Metadata()["maturity"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "experimental", maturity["stability"])
		assert.Equal(t, "active", maturity["maintenance"])
		assert.Equal(t, "good", maturity["documentation"])
		assert.Equal(t, "unknown", maturity["community"])
	})

	t.Run("should mark a v1+ version stable", func(t *testing.T) {
		t.Parallel()

		// given
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().
			WithFiles(domain.FileContents{"package.json": `{"version": "1.2.0"}`}).
			BuildAnalysisContext()

		// when
		record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

		// then
		maturity, ok := record.Metadata()["maturity"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "stable", maturity["stability"])
	})

	t.Run("should ensure tools and resources lists exist", func(t *testing.T) {
		t.Parallel()

		// given an extracted record without them
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().BuildAnalysisContext()

		// when
		record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

		// then
		meta := record.Metadata()
		assert.Contains(t, meta, "tools")
		assert.Contains(t, meta, "resources")
	})

	t.Run("should ensure every required section even on an empty extraction", func(t *testing.T) {
		t.Parallel()

		// given an agent that returned a bare object
		s := application.NewSynthesizer()
		analysisCtx := entitybuilders.NewAnalysisContextBuilder().BuildAnalysisContext()

		// when
		record := s.Synthesize(analysisCtx, domain.ServerConfiguration{}, testdoubles.TemplateRecord())

		// then
		for _, section := range domain.RequiredSections {
			assert.Contains(t, record, section)
		}
	})
}
