package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mcpcatalog/domain"
)

const (
	localName = "local"

	// Rough bytes-per-token heuristic for the summary token count.
	bytesPerToken = 4
)

// Local implements domain.Ingester by shallow-cloning the repository
// into the run's scratch directory and reading the worktree directly.
// It serves as the ingestion strategy when the claude CLI (and with it
// the GitIngest collaborator) is not reachable.
type Local struct {
	scratchDir string

	// clone state, resolved once per run
	clonePath string
	cloneErr  error
	cloned    bool
}

// NewLocal creates the local strategy rooted at the run's scratch
// directory. The clone lives and dies with that directory.
func NewLocal(scratchDir string) *Local {
	return &Local{scratchDir: scratchDir}
}

func (l *Local) Name() string { return localName }

// FetchSummary clones (once) and summarizes the worktree. Degrades to a
// placeholder summary when the clone fails.
func (l *Local) FetchSummary(
	ctx context.Context,
	ref domain.RepositoryRef,
) domain.RepositorySummary {
	repoPath, err := l.ensureClone(ctx, ref)
	if err != nil {
		logger.Warnf("Local clone failed: %v", err)
		return degradedSummary(ref, "Local clone failed")
	}

	files, totalBytes := walkWorktree(repoPath)
	return domain.RepositorySummary{
		Name:        fmt.Sprintf("%s/%s", ref.Owner, ref.Project),
		Description: fmt.Sprintf("Local clone of %s", ref.URL),
		Files:       files,
		TokenCount:  totalBytes / bytesPerToken,
	}
}

// FetchTree lists the worktree paths; empty on clone failure.
func (l *Local) FetchTree(
	ctx context.Context,
	ref domain.RepositoryRef,
) []domain.TreeEntry {
	repoPath, err := l.ensureClone(ctx, ref)
	if err != nil {
		logger.Warnf("Local clone failed: %v", err)
		return nil
	}

	files, _ := walkWorktree(repoPath)
	entries := make([]domain.TreeEntry, 0, len(files))
	for _, path := range files {
		entries = append(entries, domain.TreeEntry{Path: path})
	}
	return entries
}

// FetchFiles reads the requested paths from the worktree. Unreadable
// paths are simply omitted.
func (l *Local) FetchFiles(
	ctx context.Context,
	ref domain.RepositoryRef,
	paths []string,
) domain.FileContents {
	repoPath, err := l.ensureClone(ctx, ref)
	if err != nil {
		logger.Warnf("Local clone failed: %v", err)
		return domain.FileContents{}
	}

	contents := make(domain.FileContents, len(paths))
	for _, path := range paths {
		full := filepath.Join(repoPath, filepath.FromSlash(path))
		if !strings.HasPrefix(full, repoPath+string(os.PathSeparator)) {
			continue // path escapes the clone
		}
		data, readErr := os.ReadFile(full)
		if readErr != nil {
			logger.Debugf("[local] Skipping unreadable file %q: %v", path, readErr)
			continue
		}
		contents[path] = string(data)
	}
	return contents
}

// ensureClone performs the shallow clone on first use and memoizes the
// outcome for the rest of the run.
func (l *Local) ensureClone(
	ctx context.Context,
	ref domain.RepositoryRef,
) (string, error) {
	if l.cloned {
		return l.clonePath, l.cloneErr
	}
	l.cloned = true

	repoPath := filepath.Join(l.scratchDir, ref.Project)
	logger.Debugf("[local] Cloning %s into %s", ref.URL, repoPath)

	_, err := git.PlainCloneContext(ctx, repoPath, false, &git.CloneOptions{
		URL:   ref.URL,
		Depth: 1,
	})
	if err != nil {
		l.cloneErr = fmt.Errorf("failed to clone %s: %w", ref.URL, err)
		return "", l.cloneErr
	}

	l.clonePath = repoPath
	return repoPath, nil
}

// walkWorktree returns the repo-relative file paths (slash-separated,
// .git excluded) and the total byte size of the worktree.
func walkWorktree(repoPath string) ([]string, int) {
	var files []string
	totalBytes := 0

	_ = filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			if d.Name() == git.GitDirName {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(repoPath, path)
		if relErr != nil {
			return nil //nolint:nilerr // entry outside the root, skip
		}
		files = append(files, filepath.ToSlash(rel))

		if info, infoErr := d.Info(); infoErr == nil {
			totalBytes += int(info.Size())
		}
		return nil
	})

	return files, totalBytes
}
