package notes

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dsa-notes/internal/domain/catalog"
	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

func sampleNote(lang model.Language) model.ProblemNote {
	return model.ProblemNote{
		Submission: model.Submission{
			Title:     "Valid Parentheses",
			TitleSlug: "valid-parentheses",
			Code:      "class Solution {}",
			Runtime:   "1 ms",
			Memory:    "41 MB",
			ProblemDetails: model.ProblemDetail{
				TitleSlug:  "valid-parentheses",
				Difficulty: "Easy",
				TopicTags:  []model.TopicTag{{Name: "String", Slug: "string"}, {Name: "Stack", Slug: "stack"}},
				Hints:      []string{"Use a <b>stack</b>."},
				Content:    "<p>Given a string <code>s</code>...</p>",
			},
		},
		Category:   catalog.Strings,
		Difficulty: "easy",
		BaseName:   "valid-parentheses",
		Language:   lang,
		Explanation: model.Explanation{
			Bucket:          "stack",
			Intuition:       "LIFO.",
			Approach:        "Push and pop.",
			Steps:           []string{"Push opens.", "Pop closes."},
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(n)",
			EdgeCases:       []string{"Empty string"},
		},
	}
}

func TestRenderMarkdown(t *testing.T) {
	md, err := RenderMarkdown(sampleNote(catalog.Java))
	require.NoError(t, err)

	parts := strings.SplitN(md, "---\n", 3)
	require.Len(t, parts, 3)
	var fm frontMatter
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
	assert.Equal(t, "valid-parentheses", fm.Slug)
	assert.Equal(t, "Easy", fm.Difficulty)
	assert.Equal(t, "strings", fm.Category)
	assert.Equal(t, []string{"String", "Stack"}, fm.Tags)
	assert.Equal(t, "stack", fm.Approach)

	for _, want := range []string{
		"# Valid Parentheses",
		"**LeetCode Link:** https://leetcode.com/problems/valid-parentheses/",
		"Given a string s...",
		"1. Push opens.\n2. Pop closes.",
		"- **Tags:** String, Stack",
		"- **Time Complexity:** O(n)",
		"- Empty string",
		"## Hints\n\n- Use a stack.",
		"[`valid-parentheses.java`](./valid-parentheses.java)",
	} {
		assert.Contains(t, md, want)
	}
}

func TestRenderMarkdownWithoutDetail(t *testing.T) {
	note := sampleNote(catalog.Java)
	note.Submission.ProblemDetails = model.ProblemDetail{}
	note.Submission.Runtime = ""

	md, err := RenderMarkdown(note)
	require.NoError(t, err)
	assert.Contains(t, md, "Visit the [LeetCode problem page]")
	assert.Contains(t, md, "- **Tags:** N/A")
	assert.Contains(t, md, "- **Runtime:** N/A")
	assert.Contains(t, md, "- **Difficulty:** Medium")
	assert.NotContains(t, md, "## Hints")
}

func TestRenderSourceBlockComment(t *testing.T) {
	src := RenderSource(sampleNote(catalog.Java))
	assert.True(t, strings.HasPrefix(src, "/**\n * LeetCode Problem: Valid Parentheses\n *\n"))
	assert.Contains(t, src, " * Tags: String, Stack\n")
	assert.True(t, strings.HasSuffix(src, " */\n\nclass Solution {}\n"))
}

func TestRenderSourcePythonComment(t *testing.T) {
	note := sampleNote(catalog.Python)
	note.Submission.Code = "class Solution:\n    pass\n"

	src := RenderSource(note)
	assert.True(t, strings.HasPrefix(src, "# LeetCode Problem: Valid Parentheses\n#\n"))
	assert.NotContains(t, src, "/**")
	assert.True(t, strings.HasSuffix(src, "\n\nclass Solution:\n    pass\n"))
}

func TestWriterCreatesPair(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root, false)

	outcome, err := w.Write(context.Background(), sampleNote(catalog.Python))
	require.NoError(t, err)
	assert.Equal(t, ports.WriteCreated, outcome)

	assert.FileExists(t, filepath.Join(root, "strings", "easy", "valid-parentheses.md"))
	assert.FileExists(t, filepath.Join(root, "strings", "easy", "valid-parentheses.py"))
}

func TestWriterSkipsExistingPair(t *testing.T) {
	root := t.TempDir()
	note := sampleNote(catalog.Java)
	mdPath, _ := NewWriter(root, false).Paths(note)

	_, err := NewWriter(root, false).Write(context.Background(), note)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(mdPath, []byte("edited by hand"), 0o644))

	outcome, err := NewWriter(root, false).Write(context.Background(), note)
	require.NoError(t, err)
	assert.Equal(t, ports.WriteSkipped, outcome)
	data, _ := os.ReadFile(mdPath)
	assert.Equal(t, "edited by hand", string(data))

	outcome, err = NewWriter(root, true).Write(context.Background(), note)
	require.NoError(t, err)
	assert.Equal(t, ports.WriteCreated, outcome)
	data, _ = os.ReadFile(mdPath)
	assert.NotEqual(t, "edited by hand", string(data))
}
