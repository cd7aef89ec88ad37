package leetcode

import (
	"context"

	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

// CachedProvider serves problem details from a cache and falls back to the
// wrapped provider on a miss. Cache failures are logged and never fail a lookup.
type CachedProvider struct {
	provider ports.ProblemDetailProvider
	cache    ports.DetailCache
	logger   ports.Logger
}

var _ ports.ProblemDetailProvider = (*CachedProvider)(nil)

// NewCachedProvider wraps provider with cache.
func NewCachedProvider(provider ports.ProblemDetailProvider, cache ports.DetailCache, logger ports.Logger) *CachedProvider {
	return &CachedProvider{provider: provider, cache: cache, logger: logger}
}

// GetProblemDetail implements ports.ProblemDetailProvider.
func (c *CachedProvider) GetProblemDetail(ctx context.Context, slug string) (model.ProblemDetail, error) {
	detail, ok, err := c.cache.Get(ctx, slug)
	if err != nil {
		c.logger.Warn(ctx, "detail cache read failed", "slug", slug, "error", err)
	} else if ok {
		return detail, nil
	}

	detail, err = c.provider.GetProblemDetail(ctx, slug)
	if err != nil {
		return model.ProblemDetail{}, err
	}

	if err := c.cache.Put(ctx, slug, detail); err != nil {
		c.logger.Warn(ctx, "detail cache write failed", "slug", slug, "error", err)
	}
	return detail, nil
}
