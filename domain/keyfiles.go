package domain

import "strings"

// keyFilePriority is the fixed, ordered priority list of path patterns.
// Patterns containing a slash match by substring containment (directory
// patterns); all others match by path suffix.
var keyFilePriority = []string{
	"package.json",
	"README.md",
	"src/index.ts",
	"src/index.js",
	"src/server.ts",
	"src/server.js",
	"src/main.ts",
	"src/main.js",
	"index.ts",
	"index.js",
	"server.ts",
	"server.js",
	"mcp.json",
	"tsconfig.json",
	"src/types.ts",
	"src/types.d.ts",
	"src/tools/",
	"src/resources/",
	"lib/index.ts",
	"lib/index.js",
	"dist/index.js",
	"Dockerfile",
	"docker-compose.yml",
	"docs/README.md",
	"docs/API.md",
	"docs/api.md",
	"CHANGELOG.md",
	"LICENSE",
}

// maxKeyFiles bounds the candidate set handed to the ingestion batch call.
const maxKeyFiles = 15

// SelectKeyFiles ranks the union of tree and summary paths against the
// priority list and returns at most maxKeyFiles unique paths, ordered by
// the priority list. The result is deterministic for identical inputs.
func SelectKeyFiles(tree []TreeEntry, summary RepositorySummary) []string {
	candidates := make([]string, 0, len(tree)+len(summary.Files))
	for _, entry := range tree {
		candidates = append(candidates, entry.Path)
	}
	candidates = append(candidates, summary.Files...)

	selected := make([]string, 0, maxKeyFiles)
	seen := make(map[string]bool, maxKeyFiles)

	for _, pattern := range keyFilePriority {
		for _, path := range candidates {
			if seen[path] || !matchesKeyPattern(path, pattern) {
				continue
			}
			seen[path] = true
			selected = append(selected, path)
		}
	}

	if len(selected) > maxKeyFiles {
		selected = selected[:maxKeyFiles]
	}
	return selected
}

func matchesKeyPattern(path, pattern string) bool {
	if strings.Contains(pattern, "/") {
		return strings.Contains(path, pattern)
	}
	return strings.HasSuffix(path, pattern)
}
