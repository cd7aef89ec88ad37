package ports

import (
	"context"

	"dsa-notes/internal/domain/model"
)

// SubmissionLister returns one page of the submissions listing. An empty
// cursor requests the first page.
type SubmissionLister interface {
	ListSubmissions(ctx context.Context, cursor string, limit int) (model.SubmissionPage, error)
}

// SubmissionStore persists the aggregated submissions document.
type SubmissionStore interface {
	Save(ctx context.Context, submissions []model.Submission) error
	Load(ctx context.Context) ([]model.Submission, error)
}
