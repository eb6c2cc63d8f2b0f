package domain

import "time"

// RepositoryRef identifies a source repository resolved from a URL.
// Both Owner and Project are non-empty; a ref only exists after a
// successful URL match.
type RepositoryRef struct {
	Owner   string `json:"owner"`
	Project string `json:"project"`
	URL     string `json:"url"`
}

// RepositorySummary holds the high-level repository description returned
// by the ingestion collaborator. On ingestion failure a degraded summary
// is substituted, carrying the failure reason in Description.
type RepositorySummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Files       []string `json:"files"`
	TokenCount  int      `json:"token_count"`
}

// TreeEntry is one path entry in a repository tree.
type TreeEntry struct {
	Path string `json:"path"`
}

// FileContents maps requested file paths to retrieved text. A path
// absent from the map was not retrieved; absence is missing data, not
// an error.
type FileContents map[string]string

// Availability maps agent names to probed reachability. It is computed
// once per run and threaded through, never recomputed mid-run.
type Availability map[string]bool

// AnalysisContext aggregates everything gathered for one analysis run.
// It is never mutated after construction.
type AnalysisContext struct {
	Ref          RepositoryRef     `json:"repository"`
	ServerID     string            `json:"server_name"`
	Summary      RepositorySummary `json:"summary"`
	Tree         []TreeEntry       `json:"tree"`
	Files        FileContents      `json:"files"`
	RunID        string            `json:"run_id"`
	Timestamp    time.Time         `json:"timestamp"`
	AgentName    string            `json:"analyzer"`
	KeyFileCount int               `json:"key_files_count"`
	Availability Availability      `json:"available_agents"`
}

// ServerConfiguration is the generated catalog record. Sections are
// schema-free mappings; RequiredSections lists the ones every record
// must carry, even under total fallback.
type ServerConfiguration map[string]any

// RequiredSections are the mandatory top-level sections of a record.
var RequiredSections = []string{
	"metadata",
	"deployment",
	"automation",
	"integration",
	"security",
	"monitoring",
	"maintenance",
}

// Metadata returns the metadata section, or nil when absent or not a
// mapping.
func (c ServerConfiguration) Metadata() map[string]any {
	meta, _ := c["metadata"].(map[string]any)
	return meta
}

// Section returns the named section, creating an empty mapping when it
// is absent or not a mapping.
func (c ServerConfiguration) Section(name string) map[string]any {
	if section, ok := c[name].(map[string]any); ok {
		return section
	}
	section := map[string]any{}
	c[name] = section
	return section
}
