package application

import (
	"encoding/json"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rios0rios0/mcpcatalog/domain"
)

const (
	analysisVersion   = "1.0.0"
	fallbackGenerator = "fallback_generator"
)

// Synthesizer merges an agent-authored record with computed defaults,
// or derives the whole record from the template when analysis failed.
type Synthesizer struct {
	titleCaser cases.Caser
}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{titleCaser: cases.Title(language.English)}
}

// Synthesize produces the final record. extracted is nil when the
// analysis stage failed; template is the canonical record loaded for
// this run and is never mutated here.
func (s *Synthesizer) Synthesize(
	analysisCtx domain.AnalysisContext,
	extracted domain.ServerConfiguration,
	template domain.ServerConfiguration,
) domain.ServerConfiguration {
	record := extracted
	if record == nil {
		logger.Info("Synthesizing configuration from template fallback")
		record = cloneRecord(template)
		meta := record.Section("metadata")
		meta["analysis_date"] = analysisCtx.Timestamp.Format(time.RFC3339)
		meta["generated_by"] = fallbackGenerator
	}

	s.applyDerivedMetadata(record, analysisCtx)

	// Every required section is present even under total fallback.
	for _, name := range domain.RequiredSections {
		record.Section(name)
	}

	return record
}

// applyDerivedMetadata fills metadata fields the agent (or the
// template) left empty, from the gathered analysis context.
func (s *Synthesizer) applyDerivedMetadata(
	record domain.ServerConfiguration,
	analysisCtx domain.AnalysisContext,
) {
	meta := record.Section("metadata")
	pkg := parsePackageMetadata(analysisCtx.Files)

	setIfEmpty(meta, "server_id", analysisCtx.ServerID)
	setIfEmpty(meta, "namespace", analysisCtx.Ref.Owner)
	setIfEmpty(meta, "package", analysisCtx.Ref.Project)
	setIfEmpty(meta, "repository_url", analysisCtx.Ref.URL)
	setIfEmpty(meta, "display_name", s.displayName(analysisCtx.Ref.Project))
	setIfEmpty(meta, "version", pkg.Version)
	setIfEmpty(meta, "analysis_date", analysisCtx.Timestamp.Format(time.RFC3339))
	setIfEmpty(meta, "analysis_version", analysisVersion)

	if description, _ := meta["description"].(string); description == "" {
		if pkg.Description != "" {
			meta["description"] = pkg.Description
		} else {
			meta["description"] = analysisCtx.Summary.Description
		}
	}

	if isEmptyValue(meta["tags"]) {
		meta["tags"] = deriveTags(analysisCtx.Ref.Project, pkg.Name)
	}
	if isEmptyValue(meta["priority_deployment"]) {
		meta["priority_deployment"] = derivePriorityDeployment(analysisCtx.Files)
	}
	if isEmptyValue(meta["use_cases"]) {
		meta["use_cases"] = UseCasesFromReadme(readmeContent(analysisCtx.Files))
	}
	if isEmptyValue(meta["maturity"]) {
		meta["maturity"] = assessMaturity(pkg.Version, analysisCtx.Files)
	}

	// The coverage reporter consumes these lists; they must exist even
	// when empty.
	if _, ok := meta["tools"]; !ok {
		meta["tools"] = []any{}
	}
	if _, ok := meta["resources"]; !ok {
		meta["resources"] = []any{}
	}
}

// displayName turns a project identifier like "widget-mcp" into
// "Widget Mcp MCP Server".
func (s *Synthesizer) displayName(project string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(project)
	return s.titleCaser.String(words) + " MCP Server"
}

// packageMetadata is the subset of package.json this stage cares about.
type packageMetadata struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

func parsePackageMetadata(files domain.FileContents) packageMetadata {
	var pkg packageMetadata
	raw, ok := fileBySuffix(files, "package.json")
	if !ok {
		return pkg
	}
	if err := json.Unmarshal([]byte(raw), &pkg); err != nil {
		logger.Debugf("Unparsable package.json, ignoring: %v", err)
	}
	return pkg
}

// deriveTags builds the tag set from lightweight name matching. Every
// record is tagged mcp-server.
func deriveTags(project, packageName string) []string {
	tags := []string{"mcp-server"}

	name := strings.ToLower(packageName)
	if name == "" {
		name = strings.ToLower(project)
	}

	if strings.Contains(name, "git") {
		tags = append(tags, "git")
	}
	if strings.Contains(name, "database") || strings.Contains(name, "db") {
		tags = append(tags, "database")
	}
	if strings.Contains(name, "api") {
		tags = append(tags, "api")
	}

	return tags
}

// derivePriorityDeployment applies the fixed precedence among detected
// deployment signals: publishable package, then docker, then any signal
// at all, else manual.
func derivePriorityDeployment(files domain.FileContents) string {
	if _, ok := fileBySuffix(files, "package.json"); ok {
		return "npm"
	}
	if _, ok := fileBySuffix(files, "Dockerfile"); ok {
		return "docker"
	}
	if _, ok := fileBySuffix(files, "docker-compose.yml"); ok {
		return "docker"
	}
	if len(files) > 0 {
		return "local"
	}
	return "manual"
}

// assessMaturity derives a coarse maturity assessment from the version
// declared in package.json and the presence of docs.
func assessMaturity(version string, files domain.FileContents) map[string]any {
	stability := "unknown"
	if version != "" {
		v := "v" + strings.TrimPrefix(version, "v")
		switch {
		case !semver.IsValid(v):
			stability = "unknown"
		case semver.Major(v) == "v0":
			stability = "experimental"
		default:
			stability = "stable"
		}
	}

	maintenance := "unknown"
	if _, ok := fileBySuffix(files, "CHANGELOG.md"); ok {
		maintenance = "active"
	}

	documentation := "unknown"
	if readmeContent(files) != "" {
		documentation = "good"
	}

	return map[string]any{
		"stability":     stability,
		"maintenance":   maintenance,
		"community":     "unknown",
		"documentation": documentation,
	}
}

func readmeContent(files domain.FileContents) string {
	content, _ := fileBySuffix(files, "README.md")
	return content
}

// fileBySuffix finds a retrieved file whose path ends with the given
// suffix, preferring the shortest (most top-level) path.
func fileBySuffix(files domain.FileContents, suffix string) (string, bool) {
	best := ""
	found := false
	for path := range files {
		if !strings.HasSuffix(path, suffix) {
			continue
		}
		if !found || len(path) < len(best) {
			best = path
			found = true
		}
	}
	if !found {
		return "", false
	}
	return files[best], true
}

func setIfEmpty(section map[string]any, key, value string) {
	if current, _ := section[key].(string); current == "" && value != "" {
		section[key] = value
	}
}

func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	case []string:
		return len(value) == 0
	case map[string]any:
		return len(value) == 0
	}
	return false
}

// cloneRecord deep-copies a record through a JSON round trip so the
// template is never mutated.
func cloneRecord(record domain.ServerConfiguration) domain.ServerConfiguration {
	data, err := json.Marshal(record)
	if err != nil {
		return domain.ServerConfiguration{}
	}
	var clone domain.ServerConfiguration
	if err := json.Unmarshal(data, &clone); err != nil {
		return domain.ServerConfiguration{}
	}
	return clone
}
