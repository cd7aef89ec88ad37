package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const designDoc = `# URL Shortener

## 3. High-Level Design

The API service writes to PostgreSQL and reads through Redis.

` + "```mermaid\ngraph TD\n  A --> B\n```\n" + `
## 4. Deep Dive

Learn more from AlgoMaster.io.
`

func TestRefreshDiagrams(t *testing.T) {
	docs := &memoryDocs{
		design: []string{"01-design-problems/url-shortener.md", "01-design-problems/chat.md"},
		readmes: []string{
			"README.md",
			"02-technologies/README.md",
		},
		files: map[string]string{
			"01-design-problems/url-shortener.md": designDoc,
			"01-design-problems/chat.md":          "# Chat\n\nNo architecture yet. See https://algomaster.io/learn/chat for details.\n",
			"README.md":                           "# System Design Interviews\n\nCurated from AlgoMaster.io.\n",
			"02-technologies/README.md":           "# Technologies\n",
		},
	}
	uc := NewRefreshDiagrams(docs, nopLogger{})

	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	want := DiagramResult{Diagrams: 1, Stripped: 1, NoSection: 1, Unchanged: 1}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	updated := docs.files["01-design-problems/url-shortener.md"]
	assert.Equal(t, 1, strings.Count(updated, "```mermaid"))
	assert.NotContains(t, updated, "graph TD")
	assert.NotContains(t, updated, "AlgoMaster")
	assert.Less(t, strings.Index(updated, "```mermaid"), strings.Index(updated, "## 4. Deep Dive"))

	assert.NotContains(t, docs.files["01-design-problems/chat.md"], "algomaster.io")
	assert.NotContains(t, docs.files["README.md"], "AlgoMaster")
	assert.Equal(t, []string{
		"01-design-problems/chat.md",
		"01-design-problems/url-shortener.md",
		"README.md",
	}, docs.writes)
}

func TestRefreshDiagramsCountsFailures(t *testing.T) {
	docs := &memoryDocs{
		design:   []string{"01-design-problems/a.md", "01-design-problems/missing.md"},
		files:    map[string]string{"01-design-problems/a.md": designDoc},
		writeErr: map[string]error{"01-design-problems/a.md": errors.New("read-only file system")},
	}
	uc := NewRefreshDiagrams(docs, nopLogger{})

	result, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Failed)
	assert.Zero(t, result.Diagrams)
}
