package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

// scriptedLister replays pages in order and records the cursors it was given.
type scriptedLister struct {
	pages   []model.SubmissionPage
	errAt   int // 1-based call number that fails, 0 for never
	err     error
	cursors []string
	limits  []int
}

func (s *scriptedLister) ListSubmissions(_ context.Context, cursor string, limit int) (model.SubmissionPage, error) {
	s.cursors = append(s.cursors, cursor)
	s.limits = append(s.limits, limit)
	call := len(s.cursors)
	if s.errAt == call {
		return model.SubmissionPage{}, s.err
	}
	if call > len(s.pages) {
		return model.SubmissionPage{}, nil
	}
	return s.pages[call-1], nil
}

// endlessLister always reports another page.
type endlessLister struct {
	calls int
}

func (e *endlessLister) ListSubmissions(context.Context, string, int) (model.SubmissionPage, error) {
	e.calls++
	return model.SubmissionPage{
		Submissions: []model.Submission{{ID: int64(e.calls), TitleSlug: "two-sum", StatusDisplay: "Accepted"}},
		HasNext:     true,
	}, nil
}

type fakeDetails struct {
	details map[string]model.ProblemDetail
	calls   []string
}

func (f *fakeDetails) GetProblemDetail(_ context.Context, slug string) (model.ProblemDetail, error) {
	f.calls = append(f.calls, slug)
	d, ok := f.details[slug]
	if !ok {
		return model.ProblemDetail{}, errors.New("question not found")
	}
	return d, nil
}

type memoryStore struct {
	saved   []model.Submission
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryStore) Save(_ context.Context, submissions []model.Submission) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.saved = append([]model.Submission(nil), submissions...)
	return nil
}

func (m *memoryStore) Load(context.Context) ([]model.Submission, error) {
	return m.saved, m.loadErr
}

type recordingWriter struct {
	notes    []model.ProblemNote
	skip     map[string]bool
	failures map[string]error
}

func (r *recordingWriter) Write(_ context.Context, note model.ProblemNote) (ports.WriteOutcome, error) {
	slug := note.Submission.TitleSlug
	if err := r.failures[slug]; err != nil {
		return ports.WriteSkipped, err
	}
	r.notes = append(r.notes, note)
	if r.skip[slug] {
		return ports.WriteSkipped, nil
	}
	return ports.WriteCreated, nil
}

type memoryDocs struct {
	design   []string
	readmes  []string
	files    map[string]string
	writes   []string
	writeErr map[string]error
}

func (m *memoryDocs) DesignDocs(context.Context) ([]string, error) {
	out := append([]string(nil), m.design...)
	sort.Strings(out)
	return out, nil
}

func (m *memoryDocs) Readmes(context.Context) ([]string, error) {
	return m.readmes, nil
}

func (m *memoryDocs) Read(_ context.Context, path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return content, nil
}

func (m *memoryDocs) Write(_ context.Context, path, content string) error {
	if err := m.writeErr[path]; err != nil {
		return err
	}
	m.writes = append(m.writes, path)
	m.files[path] = content
	return nil
}

type sleepRecorder struct {
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return ctx.Err()
}
