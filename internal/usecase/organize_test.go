package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa-notes/internal/adapter/notes"
	"dsa-notes/internal/domain/model"
)

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	input := []model.Submission{
		{ID: 3, TitleSlug: "two-sum", Runtime: "3 ms"},
		{ID: 2, TitleSlug: "valid-parentheses"},
		{ID: 1, TitleSlug: "two-sum", Runtime: "9 ms"},
		{ID: 0},
	}

	got := Dedupe(input)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, "3 ms", got[0].Runtime)
	assert.Equal(t, "valid-parentheses", got[1].TitleSlug)
}

func TestBuildNote(t *testing.T) {
	tests := []struct {
		name       string
		submission model.Submission
		category   string
		difficulty string
		base       string
		ext        string
		bucket     string
	}{
		{
			name: "stack problem",
			submission: model.Submission{
				Title:     "Valid Parentheses",
				TitleSlug: "valid-parentheses",
				LangName:  "Python3",
				Code:      "stack = []",
				ProblemDetails: model.ProblemDetail{
					Difficulty: "Hard",
					TopicTags:  []model.TopicTag{{Name: "Stack", Slug: "stack"}},
				},
			},
			category:   "stacks-queues",
			difficulty: "hard",
			base:       "valid-parentheses",
			ext:        "py",
			bucket:     "stack",
		},
		{
			name: "no detail falls back to defaults",
			submission: model.Submission{
				Title:     "Two Sum!",
				TitleSlug: "two-sum",
				Lang:      "golang",
				Code:      "return nil",
			},
			category:   "arrays",
			difficulty: "medium",
			base:       "two-sum",
			ext:        "java",
			bucket:     "generic",
		},
		{
			name: "untitled uses slug",
			submission: model.Submission{
				Title:     "???",
				TitleSlug: "lru-cache",
				LangName:  "C++",
			},
			category:   "arrays",
			difficulty: "medium",
			base:       "lru-cache",
			ext:        "cpp",
			bucket:     "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := BuildNote(tt.submission)
			assert.Equal(t, tt.category, note.Category)
			assert.Equal(t, tt.difficulty, note.Difficulty)
			assert.Equal(t, tt.base, note.BaseName)
			assert.Equal(t, tt.ext, note.Language.Extension)
			assert.Equal(t, tt.bucket, note.Explanation.Bucket)
		})
	}
}

func TestOrganizeCountsOutcomes(t *testing.T) {
	store := &memoryStore{saved: []model.Submission{
		{TitleSlug: "two-sum", Title: "Two Sum"},
		{TitleSlug: "two-sum", Title: "Two Sum"},
		{TitleSlug: "valid-parentheses", Title: "Valid Parentheses"},
		{TitleSlug: "lru-cache", Title: "LRU Cache"},
	}}
	writer := &recordingWriter{
		skip:     map[string]bool{"valid-parentheses": true},
		failures: map[string]error{"lru-cache": errors.New("permission denied")},
	}
	uc := NewOrganizeSubmissions(store, writer, nopLogger{})

	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	want := OrganizeResult{Total: 4, Unique: 3, Created: 1, Skipped: 1, Failed: 1}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestOrganizeFailsWhenInputUnreadable(t *testing.T) {
	store := &memoryStore{loadErr: errors.New("unexpected end of JSON input")}
	uc := NewOrganizeSubmissions(store, &recordingWriter{}, nopLogger{})

	_, err := uc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load submissions")
}

func TestOrganizeWritesNotesTree(t *testing.T) {
	root := t.TempDir()
	store := &memoryStore{saved: []model.Submission{{
		Title:         "Min Stack",
		TitleSlug:     "min-stack",
		LangName:      "Java",
		Code:          "Deque<Integer> stack = new ArrayDeque<>();",
		Runtime:       "4 ms",
		Memory:        "44 MB",
		StatusDisplay: "Accepted",
		ProblemDetails: model.ProblemDetail{
			TitleSlug:  "min-stack",
			Difficulty: "Hard",
			TopicTags:  []model.TopicTag{{Name: "Stack", Slug: "stack"}, {Name: "Design", Slug: "design"}},
		},
	}}}
	uc := NewOrganizeSubmissions(store, notes.NewWriter(root, false), nopLogger{})

	result, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	dir := filepath.Join(root, "stacks-queues", "hard")
	markdown, err := os.ReadFile(filepath.Join(dir, "min-stack.md"))
	require.NoError(t, err)
	assert.Contains(t, string(markdown), "Min Stack")
	assert.FileExists(t, filepath.Join(dir, "min-stack.java"))

	again, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, again.Skipped)
	assert.Zero(t, again.Created)
}
