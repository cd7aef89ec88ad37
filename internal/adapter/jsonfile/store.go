// Package jsonfile keeps the fetched submissions as one JSON array on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

// Store reads and writes the submissions document at a fixed path.
type Store struct {
	path string
}

var _ ports.SubmissionStore = (*Store)(nil)

// New creates a Store for path.
func New(path string) *Store {
	return &Store{path: path}
}

// Save replaces the document with submissions. The file is written to a
// temporary sibling first so an interrupted run never leaves half a document.
func (s *Store) Save(_ context.Context, submissions []model.Submission) error {
	if submissions == nil {
		submissions = []model.Submission{}
	}

	data, err := json.MarshalIndent(submissions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal submissions: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename into %s: %w", s.path, err)
	}
	return nil
}

// Load reads the document. A missing file is reported as an error wrapping
// os.ErrNotExist.
func (s *Store) Load(_ context.Context) ([]model.Submission, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var submissions []model.Submission
	if err := json.Unmarshal(data, &submissions); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return submissions, nil
}
