package usecase

import (
	"context"
	"fmt"
	"time"

	"dsa-notes/internal/domain/catalog"
	"dsa-notes/internal/domain/explain"
	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

// OrganizeResult counts what happened to each unique problem.
type OrganizeResult struct {
	Total   int
	Unique  int
	Created int
	Skipped int
	Failed  int
}

// OrganizeSubmissions turns the saved submissions into a categorized notes tree.
type OrganizeSubmissions struct {
	store  ports.SubmissionStore
	writer ports.NoteWriter
	logger ports.Logger
}

// NewOrganizeSubmissions constructs an OrganizeSubmissions use case.
func NewOrganizeSubmissions(store ports.SubmissionStore, writer ports.NoteWriter, logger ports.Logger) *OrganizeSubmissions {
	return &OrganizeSubmissions{store: store, writer: writer, logger: logger}
}

// Run loads, dedupes, classifies and writes every problem. A failure on one
// problem is logged and counted, the rest still run.
func (o *OrganizeSubmissions) Run(ctx context.Context) (OrganizeResult, error) {
	start := time.Now()

	submissions, err := o.store.Load(ctx)
	if err != nil {
		o.logger.Error(ctx, "failed to load submissions", "error", err)
		return OrganizeResult{}, fmt.Errorf("load submissions: %w", err)
	}

	unique := Dedupe(submissions)
	result := OrganizeResult{Total: len(submissions), Unique: len(unique)}
	o.logger.Info(ctx, "organizing submissions", "total", result.Total, "unique", result.Unique)

	for _, s := range unique {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		note := BuildNote(s)
		outcome, err := o.writer.Write(ctx, note)
		if err != nil {
			result.Failed++
			o.logger.Error(ctx, "failed to write problem", "title", s.Title, "error", err)
			continue
		}

		switch outcome {
		case ports.WriteCreated:
			result.Created++
			o.logger.Info(ctx, "created problem",
				"path", note.Category+"/"+note.Difficulty+"/"+note.BaseName,
				"extension", note.Language.Extension)
		case ports.WriteSkipped:
			result.Skipped++
			o.logger.Info(ctx, "skipping existing problem", "title", s.Title)
		}
	}

	o.logger.Info(ctx, "organize completed",
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"duration", time.Since(start))
	return result, nil
}

// Dedupe keeps the first submission for each title slug, preserving order.
// Submissions without a slug cannot be placed and are dropped.
func Dedupe(submissions []model.Submission) []model.Submission {
	seen := make(map[string]struct{}, len(submissions))
	unique := make([]model.Submission, 0, len(submissions))
	for _, s := range submissions {
		if s.TitleSlug == "" {
			continue
		}
		if _, ok := seen[s.TitleSlug]; ok {
			continue
		}
		seen[s.TitleSlug] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}

// BuildNote classifies a submission and attaches its explanation.
func BuildNote(s model.Submission) model.ProblemNote {
	detail := s.ProblemDetails
	tags := detail.TagSlugs()

	lang := s.LangName
	if lang == "" {
		lang = s.Lang
	}

	base := catalog.SanitizeFilename(s.Title)
	if base == "" {
		base = catalog.SanitizeFilename(s.TitleSlug)
	}

	return model.ProblemNote{
		Submission:  s,
		Category:    catalog.Category(tags),
		Difficulty:  catalog.DifficultyFolder(detail.Difficulty),
		BaseName:    base,
		Language:    catalog.Language(lang),
		Explanation: explain.Synthesize(s.Code, tags),
	}
}
