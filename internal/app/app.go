package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"dsa-notes/internal/domain/ports"
	"dsa-notes/internal/usecase"
)

// Fetcher refreshes the submissions file.
type Fetcher interface {
	Run(ctx context.Context) (usecase.FetchResult, error)
}

// Organizer rebuilds the notes tree from the submissions file.
type Organizer interface {
	Run(ctx context.Context) (usecase.OrganizeResult, error)
}

// App runs fetch followed by organize, once or on a cron schedule.
type App struct {
	cron     *cron.Cron
	fetch    Fetcher
	organize Organizer
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means a single run.
func New(fetch Fetcher, organize Organizer, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger}))),
		fetch:    fetch,
		organize: organize,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes a sync immediately. With a schedule it then keeps syncing on
// every tick until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.Sync(ctx)
	}

	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first sync immediately")
	if err := a.Sync(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error(ctx, "initial sync failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

// Sync fetches submissions and then organizes them. An incomplete listing
// still gets organized since its partial result was saved.
func (a *App) Sync(ctx context.Context) error {
	start := time.Now()

	fetched, err := a.fetch.Run(ctx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	organized, err := a.organize.Run(ctx)
	if err != nil {
		return fmt.Errorf("organize: %w", err)
	}

	a.logger.Info(ctx, "sync completed",
		"accepted", fetched.Accepted,
		"incomplete", fetched.Incomplete,
		"created", organized.Created,
		"skipped", organized.Skipped,
		"duration", time.Since(start))
	return nil
}

func (a *App) scheduleJob(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		if err := a.Sync(ctx); err != nil {
			a.logger.Error(ctx, "scheduled sync failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.schedule, err)
	}
	return nil
}

// cronLogger reports skipped overlapping runs through the application logger.
type cronLogger struct {
	logger ports.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.logger.Info(context.Background(), "cron: "+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.logger.Error(context.Background(), "cron: "+msg, append(keysAndValues, "error", err)...)
}
