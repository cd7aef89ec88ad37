package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

// ErrIncomplete marks a listing that stopped before the judge reported the
// last page. The submissions gathered so far are still returned.
var ErrIncomplete = errors.New("submission listing incomplete")

// FetchConfig controls paging and pacing of the fetch.
type FetchConfig struct {
	PageSize    int
	MaxPages    int
	PageDelay   time.Duration
	DetailDelay time.Duration
}

// FetchResult summarises a fetch run.
type FetchResult struct {
	Pages      int
	Accepted   int
	Enriched   int
	Incomplete bool
}

// FetchSubmissions pulls accepted submissions, attaches problem details and
// writes the aggregate document once at the end.
type FetchSubmissions struct {
	lister  ports.SubmissionLister
	details ports.ProblemDetailProvider
	store   ports.SubmissionStore
	logger  ports.Logger
	cfg     FetchConfig
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewFetchSubmissions constructs a FetchSubmissions use case.
func NewFetchSubmissions(
	lister ports.SubmissionLister,
	details ports.ProblemDetailProvider,
	store ports.SubmissionStore,
	logger ports.Logger,
	cfg FetchConfig,
) *FetchSubmissions {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 100
	}
	return &FetchSubmissions{
		lister:  lister,
		details: details,
		store:   store,
		logger:  logger,
		cfg:     cfg,
		sleep:   sleepContext,
	}
}

// Run executes the fetch workflow. A listing that stopped early is logged and
// its partial result is still saved; only cancellation or a failed save
// returns an error.
func (f *FetchSubmissions) Run(ctx context.Context) (FetchResult, error) {
	start := time.Now()
	f.logger.Info(ctx, "fetching submissions")

	var result FetchResult
	accepted, pages, err := f.listAccepted(ctx)
	result.Pages = pages
	result.Accepted = len(accepted)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		result.Incomplete = true
		f.logger.Warn(ctx, "submission listing stopped early, keeping partial result",
			"error", err, "accepted", len(accepted))
	}

	f.logger.Info(ctx, "fetching problem details", "submissions", len(accepted))
	enriched := f.Enrich(ctx, accepted)
	if err := ctx.Err(); err != nil {
		return result, err
	}
	for _, s := range enriched {
		if !s.ProblemDetails.Empty() {
			result.Enriched++
		}
	}

	if err := f.store.Save(ctx, enriched); err != nil {
		f.logger.Error(ctx, "failed to save submissions", "error", err)
		return result, fmt.Errorf("save submissions: %w", err)
	}

	f.logger.Info(ctx, "fetch completed",
		"accepted", result.Accepted,
		"enriched", result.Enriched,
		"incomplete", result.Incomplete,
		"duration", time.Since(start))
	return result, nil
}

// ListAccepted pages through the submissions listing and keeps the accepted
// ones. When the loop stops early the returned error wraps ErrIncomplete and
// the accumulated submissions are returned alongside it.
func (f *FetchSubmissions) ListAccepted(ctx context.Context) ([]model.Submission, error) {
	accepted, _, err := f.listAccepted(ctx)
	return accepted, err
}

func (f *FetchSubmissions) listAccepted(ctx context.Context) ([]model.Submission, int, error) {
	var accepted []model.Submission
	cursor := ""

	for page := 1; page <= f.cfg.MaxPages; page++ {
		p, err := f.lister.ListSubmissions(ctx, cursor, f.cfg.PageSize)
		if err != nil {
			f.logger.Error(ctx, "failed to fetch submissions page", "page", page, "error", err)
			return accepted, page - 1, fmt.Errorf("page %d: %w: %w", page, ErrIncomplete, err)
		}

		if len(p.Submissions) == 0 {
			f.logger.Info(ctx, "no more submissions", "page", page)
			return accepted, page, nil
		}

		kept := 0
		for _, s := range p.Submissions {
			if s.Accepted() {
				accepted = append(accepted, s)
				kept++
			}
		}
		f.logger.Info(ctx, "fetched submissions page", "page", page, "accepted", kept, "total", len(accepted))

		if !p.HasNext {
			f.logger.Info(ctx, "reached end of submissions", "page", page)
			return accepted, page, nil
		}

		cursor = p.LastKey
		if cursor == "" {
			cursor = fallbackCursor(p.Submissions)
			if cursor == "" {
				f.logger.Warn(ctx, "no pagination key available", "page", page, "accepted", len(accepted))
				return accepted, page, fmt.Errorf("page %d: no pagination key: %w", page, ErrIncomplete)
			}
			f.logger.Info(ctx, "using fallback pagination key", "page", page, "cursor", cursor)
		}

		if err := f.sleep(ctx, f.cfg.PageDelay); err != nil {
			return accepted, page, fmt.Errorf("page %d: %w: %w", page, ErrIncomplete, err)
		}
	}

	f.logger.Warn(ctx, "page limit reached", "max_pages", f.cfg.MaxPages, "accepted", len(accepted))
	return accepted, f.cfg.MaxPages, fmt.Errorf("page limit %d reached: %w", f.cfg.MaxPages, ErrIncomplete)
}

// fallbackCursor derives a cursor from the last raw record of a page.
func fallbackCursor(page []model.Submission) string {
	last := page[len(page)-1]
	switch {
	case last.ID != 0:
		return strconv.FormatInt(last.ID, 10)
	case last.Timestamp != 0:
		return strconv.FormatInt(last.Timestamp, 10)
	default:
		return ""
	}
}

// Enrich attaches the problem detail to every submission. Each slug is looked
// up once per run; later submissions of the same problem reuse the result. A
// failed lookup leaves the detail empty and never stops the batch.
func (f *FetchSubmissions) Enrich(ctx context.Context, submissions []model.Submission) []model.Submission {
	enriched := make([]model.Submission, 0, len(submissions))
	known := make(map[string]model.ProblemDetail)
	for i, s := range submissions {
		if ctx.Err() != nil {
			enriched = append(enriched, submissions[i:]...)
			break
		}
		if s.TitleSlug == "" {
			enriched = append(enriched, s)
			continue
		}

		if detail, ok := known[s.TitleSlug]; ok {
			s.ProblemDetails = detail
			enriched = append(enriched, s)
			continue
		}

		detail, err := f.details.GetProblemDetail(ctx, s.TitleSlug)
		if err != nil {
			f.logger.Warn(ctx, "problem detail unavailable", "slug", s.TitleSlug, "error", err)
			detail = model.ProblemDetail{}
		}
		known[s.TitleSlug] = detail
		s.ProblemDetails = detail
		enriched = append(enriched, s)
		f.logger.Info(ctx, "fetched problem detail", "progress", fmt.Sprintf("%d/%d", i+1, len(submissions)), "title", s.Title)

		_ = f.sleep(ctx, f.cfg.DetailDelay)
	}
	return enriched
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
