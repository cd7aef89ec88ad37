package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa-notes/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingLogger) record(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *recordingLogger) Info(_ context.Context, msg string, _ ...any)  { r.record(msg) }
func (r *recordingLogger) Warn(_ context.Context, msg string, _ ...any)  { r.record(msg) }
func (r *recordingLogger) Error(_ context.Context, msg string, _ ...any) { r.record(msg) }

type stubFetcher struct {
	calls  int
	result usecase.FetchResult
	err    error
}

func (s *stubFetcher) Run(context.Context) (usecase.FetchResult, error) {
	s.calls++
	return s.result, s.err
}

type stubOrganizer struct {
	calls int
	err   error
}

func (s *stubOrganizer) Run(context.Context) (usecase.OrganizeResult, error) {
	s.calls++
	return usecase.OrganizeResult{Created: 1}, s.err
}

func TestRunOnceWithoutSchedule(t *testing.T) {
	fetch := &stubFetcher{result: usecase.FetchResult{Accepted: 3, Incomplete: true}}
	organize := &stubOrganizer{}

	err := New(fetch, organize, nopLogger{}, "").Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetch.calls)
	assert.Equal(t, 1, organize.calls)
}

func TestSyncSkipsOrganizeWhenFetchFails(t *testing.T) {
	fetch := &stubFetcher{err: errors.New("save submissions: disk full")}
	organize := &stubOrganizer{}

	err := New(fetch, organize, nopLogger{}, "").Sync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch")
	assert.Zero(t, organize.calls)
}

func TestSyncReportsOrganizeError(t *testing.T) {
	organize := &stubOrganizer{err: errors.New("load submissions: not found")}

	err := New(&stubFetcher{}, organize, nopLogger{}, "").Sync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "organize")
}

func TestRunRejectsInvalidSchedule(t *testing.T) {
	fetch := &stubFetcher{}

	err := New(fetch, &stubOrganizer{}, nopLogger{}, "not a cron").Run(context.Background())
	require.Error(t, err)
	assert.Zero(t, fetch.calls)
}

func TestRunWithScheduleStopsOnCancel(t *testing.T) {
	fetch := &stubFetcher{}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := New(fetch, &stubOrganizer{}, nopLogger{}, "@every 1h").Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fetch.calls)
}

func TestScheduledTicksDoNotLogSchedulerInternals(t *testing.T) {
	fetch := &stubFetcher{}
	logger := &recordingLogger{}
	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	err := New(fetch, &stubOrganizer{}, logger, "@every 1s").Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetch.calls)

	logger.mu.Lock()
	defer logger.mu.Unlock()
	for _, msg := range logger.messages {
		assert.False(t, strings.HasPrefix(msg, "cron:"), "unexpected scheduler log %q", msg)
	}
}
