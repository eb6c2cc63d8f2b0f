package domain

import "context"

// Ingester supplies repository metadata from an external source.
// Ingestion failure is never fatal to a run: every operation degrades
// instead of erroring. A failed summary carries the reason in its
// description, a failed tree comes back empty, and file contents simply
// omit the paths that could not be retrieved.
type Ingester interface {
	// Name returns the ingestion strategy identifier.
	Name() string

	// FetchSummary returns the repository summary, degraded on failure.
	FetchSummary(ctx context.Context, ref RepositoryRef) RepositorySummary

	// FetchTree returns the repository tree, empty on failure.
	FetchTree(ctx context.Context, ref RepositoryRef) []TreeEntry

	// FetchFiles retrieves the contents of the given paths in one batch.
	// Paths missing from the result were not retrieved.
	FetchFiles(ctx context.Context, ref RepositoryRef, paths []string) FileContents
}

// TemplateLoader reads the canonical template record that defines the
// shape of every ServerConfiguration and serves as the total-fallback
// output.
type TemplateLoader interface {
	Load() (ServerConfiguration, error)
}
