package ports

import (
	"context"

	"dsa-notes/internal/domain/model"
)

// WriteOutcome tells the caller what a NoteWriter did.
type WriteOutcome int

const (
	WriteCreated WriteOutcome = iota
	WriteSkipped
)

// NoteWriter writes the markdown and source files for a problem.
type NoteWriter interface {
	Write(ctx context.Context, note model.ProblemNote) (WriteOutcome, error)
}

// DocumentStore lists, reads and rewrites markdown design documents.
type DocumentStore interface {
	DesignDocs(ctx context.Context) ([]string, error)
	Readmes(ctx context.Context) ([]string, error)
	Read(ctx context.Context, path string) (string, error)
	Write(ctx context.Context, path, content string) error
}
