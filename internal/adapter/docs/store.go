// Package docs reads and rewrites the system design markdown tree.
package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dsa-notes/internal/domain/ports"
)

const designProblemsDir = "01-design-problems"

var readmeDirs = []string{"", designProblemsDir, "02-technologies", "03-concepts", "04-prep"}

// Store is a ports.DocumentStore over a directory on disk.
type Store struct {
	baseDir string
}

var _ ports.DocumentStore = (*Store)(nil)

// New creates a Store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// DesignDocs lists the design problem write-ups in name order, README excluded.
func (s *Store) DesignDocs(_ context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.baseDir, designProblemsDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("list design docs: %w", err)
	}

	docs := make([]string, 0, len(matches))
	for _, m := range matches {
		if filepath.Base(m) == "README.md" {
			continue
		}
		docs = append(docs, m)
	}
	sort.Strings(docs)
	return docs, nil
}

// Readmes lists the section READMEs that exist.
func (s *Store) Readmes(_ context.Context) ([]string, error) {
	var readmes []string
	for _, dir := range readmeDirs {
		path := filepath.Join(s.baseDir, dir, "README.md")
		if _, err := os.Stat(path); err == nil {
			readmes = append(readmes, path)
		}
	}
	return readmes, nil
}

// Read returns the document at path.
func (s *Store) Read(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the document at path, keeping its permissions.
func (s *Store) Write(_ context.Context, path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
