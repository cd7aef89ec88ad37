package ports

import (
	"context"

	"dsa-notes/internal/domain/model"
)

// ProblemDetailProvider fetches question metadata by title slug.
type ProblemDetailProvider interface {
	GetProblemDetail(ctx context.Context, slug string) (model.ProblemDetail, error)
}

// DetailCache persists problem details between runs.
type DetailCache interface {
	Get(ctx context.Context, slug string) (model.ProblemDetail, bool, error)
	Put(ctx context.Context, slug string, detail model.ProblemDetail) error
}
