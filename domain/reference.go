package domain

import (
	"fmt"
	"regexp"
)

// referencePatterns are tried in order; the first match wins. Bare
// owner/project URLs (optionally with .git or a trailing slash) come
// first, then tree/blob deep links.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`),
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+)/tree/`),
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+)/blob/`),
}

// ParseRepositoryURL resolves a repository URL into a RepositoryRef.
// It fails with ErrInvalidReference when no pattern matches or when a
// match yields an empty owner or project.
func ParseRepositoryURL(rawURL string) (RepositoryRef, error) {
	for _, pattern := range referencePatterns {
		match := pattern.FindStringSubmatch(rawURL)
		if match == nil {
			continue
		}
		owner, project := match[1], match[2]
		if owner == "" || project == "" {
			continue
		}
		return RepositoryRef{Owner: owner, Project: project, URL: rawURL}, nil
	}
	return RepositoryRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, rawURL)
}
