// Package materialize turns a remote template repository into a concrete
// project directory: clone, keyword substitution, housekeeping cleanup.
package materialize

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"webstart/pkg/project"
)

// Cloner fetches a remote template repository into a local directory.
type Cloner interface {
	Clone(ctx context.Context, url, dir string) error
}

// DirectoryConflictError reports a target directory that already exists.
type DirectoryConflictError struct {
	Path string
}

func (e *DirectoryConflictError) Error() string {
	return fmt.Sprintf("target directory already exists: %s", e.Path)
}

// FetchError reports a failed template clone.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch template %s: %v", e.URL, e.Err)
}
func (e *FetchError) Unwrap() error { return e.Err }

// ManifestError reports a missing or malformed template manifest.
type ManifestError struct {
	Err error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("invalid template manifest: %v", e.Err)
}
func (e *ManifestError) Unwrap() error { return e.Err }

type Materializer struct {
	cloner Cloner
	errOut io.Writer
}

func New(cloner Cloner, errOut io.Writer) *Materializer {
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Materializer{cloner: cloner, errOut: errOut}
}

// Materialize clones the template at cloneURL into targetDir, rewrites the
// manifest-declared files and strips template housekeeping. Phases run in
// strict order: a fetch or manifest failure aborts before any substitution.
// Per-file substitution and cleanup failures are logged but never abort
// their siblings.
func (m *Materializer) Materialize(ctx context.Context, targetDir, cloneURL string, setup project.Setup) error {
	if _, err := os.Stat(targetDir); err == nil {
		return &DirectoryConflictError{Path: targetDir}
	}

	if err := m.cloner.Clone(ctx, cloneURL, targetDir); err != nil {
		return &FetchError{URL: cloneURL, Err: err}
	}

	entries, err := readManifest(filepath.Join(targetDir, ManifestName))
	if err != nil {
		return &ManifestError{Err: err}
	}

	for _, err := range m.substituteAll(targetDir, entries, setup) {
		if err != nil {
			fmt.Fprintf(m.errOut, "warning: %v\n", err)
		}
	}

	m.cleanup(targetDir)
	return nil
}

// substituteAll rewrites every manifest entry concurrently and waits for
// all outcomes. The entries touch distinct files, so no locking is needed.
func (m *Materializer) substituteAll(targetDir string, entries []Entry, setup project.Setup) []error {
	results := make([]error, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i int, entry Entry) {
			defer wg.Done()
			results[i] = substituteFile(targetDir, entry, setup)
		}(i, entry)
	}
	wg.Wait()

	return results
}

func substituteFile(targetDir string, entry Entry, setup project.Setup) error {
	path, err := resolveEntryPath(targetDir, entry.File)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("substitute %s: %w", entry.File, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("substitute %s: %w", entry.File, err)
	}

	content := string(data)
	for _, keyword := range entry.Keywords {
		value, ok := project.Resolve(keyword, setup)
		if !ok {
			continue
		}
		content = strings.ReplaceAll(content, keyword, value)
	}

	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("substitute %s: %w", entry.File, err)
	}
	return nil
}

// resolveEntryPath rejects manifest entries whose cleaned path would land
// outside the cloned directory.
func resolveEntryPath(targetDir, file string) (string, error) {
	path := filepath.Join(targetDir, filepath.FromSlash(file))

	rel, err := filepath.Rel(targetDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("manifest entry %q escapes the template directory", file)
	}
	return path, nil
}

// cleanup strips template housekeeping: the manifest, the template LICENSE
// and the version-control metadata. All deletes are best-effort and a
// missing file is not an error.
func (m *Materializer) cleanup(targetDir string) {
	targets := []string{ManifestName, "LICENSE", ".git"}

	var wg sync.WaitGroup
	for _, name := range targets {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := os.RemoveAll(filepath.Join(targetDir, name)); err != nil {
				fmt.Fprintf(m.errOut, "warning: cleanup %s: %v\n", name, err)
			}
		}(name)
	}
	wg.Wait()
}
