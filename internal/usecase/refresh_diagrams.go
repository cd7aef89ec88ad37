package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"dsa-notes/internal/domain/hld"
	"dsa-notes/internal/domain/ports"
)

// DiagramResult counts the documents touched by a diagram refresh.
type DiagramResult struct {
	Diagrams  int
	Stripped  int
	NoSection int
	Unchanged int
	Failed    int
}

// RefreshDiagrams rewrites design documents with a generated architecture
// diagram and removes third-party references from the READMEs.
type RefreshDiagrams struct {
	docs   ports.DocumentStore
	logger ports.Logger
}

// NewRefreshDiagrams constructs a RefreshDiagrams use case.
func NewRefreshDiagrams(docs ports.DocumentStore, logger ports.Logger) *RefreshDiagrams {
	return &RefreshDiagrams{docs: docs, logger: logger}
}

// Run processes every design document, then every README.
func (r *RefreshDiagrams) Run(ctx context.Context) (DiagramResult, error) {
	var result DiagramResult

	docs, err := r.docs.DesignDocs(ctx)
	if err != nil {
		r.logger.Error(ctx, "failed to list design documents", "error", err)
		return result, err
	}
	r.logger.Info(ctx, "processing design documents", "count", len(docs))

	for _, path := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		r.refreshDocument(ctx, path, &result)
	}

	readmes, err := r.docs.Readmes(ctx)
	if err != nil {
		r.logger.Error(ctx, "failed to list readme files", "error", err)
		return result, err
	}
	for _, path := range readmes {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		r.stripReadme(ctx, path, &result)
	}

	r.logger.Info(ctx, "diagram refresh completed",
		"diagrams", result.Diagrams,
		"stripped", result.Stripped,
		"failed", result.Failed)
	return result, nil
}

func (r *RefreshDiagrams) refreshDocument(ctx context.Context, path string, result *DiagramResult) {
	content, err := r.docs.Read(ctx, path)
	if err != nil {
		result.Failed++
		r.logger.Error(ctx, "failed to read document", "path", path, "error", err)
		return
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	applied := hld.Apply(content, hld.TitleFromFilename(stem))

	if err := r.docs.Write(ctx, path, applied.Content); err != nil {
		result.Failed++
		r.logger.Error(ctx, "failed to write document", "path", path, "error", err)
		return
	}

	if !applied.HasSection {
		result.NoSection++
		r.logger.Warn(ctx, "no high-level design section, references stripped only", "path", path)
		return
	}
	result.Diagrams++
	r.logger.Info(ctx, "inserted diagram", "path", path, "replaced", applied.Removed)
}

func (r *RefreshDiagrams) stripReadme(ctx context.Context, path string, result *DiagramResult) {
	content, err := r.docs.Read(ctx, path)
	if err != nil {
		result.Failed++
		r.logger.Error(ctx, "failed to read readme", "path", path, "error", err)
		return
	}

	stripped := hld.StripReferences(content)
	if stripped == content {
		result.Unchanged++
		return
	}
	if err := r.docs.Write(ctx, path, stripped); err != nil {
		result.Failed++
		r.logger.Error(ctx, "failed to write readme", "path", path, "error", err)
		return
	}
	result.Stripped++
	r.logger.Info(ctx, "stripped references", "path", path)
}
