// Package notes writes per-problem markdown and solution files.
package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

// Writer lays notes out as <root>/<category>/<difficulty>/<name>.{md,ext}.
type Writer struct {
	root      string
	overwrite bool
}

var _ ports.NoteWriter = (*Writer)(nil)

// NewWriter creates a Writer rooted at root. Existing pairs are kept unless
// overwrite is set.
func NewWriter(root string, overwrite bool) *Writer {
	return &Writer{root: root, overwrite: overwrite}
}

// Paths returns the markdown and source file paths of note.
func (w *Writer) Paths(note model.ProblemNote) (string, string) {
	dir := filepath.Join(w.root, note.Category, note.Difficulty)
	return filepath.Join(dir, note.BaseName+".md"),
		filepath.Join(dir, note.BaseName+"."+note.Language.Extension)
}

// Write implements ports.NoteWriter.
func (w *Writer) Write(_ context.Context, note model.ProblemNote) (ports.WriteOutcome, error) {
	mdPath, codePath := w.Paths(note)

	if !w.overwrite && exists(mdPath) && exists(codePath) {
		return ports.WriteSkipped, nil
	}

	markdown, err := RenderMarkdown(note)
	if err != nil {
		return ports.WriteSkipped, err
	}

	if err := os.MkdirAll(filepath.Dir(mdPath), 0o755); err != nil {
		return ports.WriteSkipped, fmt.Errorf("create %s: %w", filepath.Dir(mdPath), err)
	}
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return ports.WriteSkipped, fmt.Errorf("write %s: %w", mdPath, err)
	}
	if err := os.WriteFile(codePath, []byte(RenderSource(note)), 0o644); err != nil {
		return ports.WriteSkipped, fmt.Errorf("write %s: %w", codePath, err)
	}
	return ports.WriteCreated, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
