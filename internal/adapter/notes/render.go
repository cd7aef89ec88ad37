package notes

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"dsa-notes/internal/adapter/leetcode"
	"dsa-notes/internal/domain/model"
)

type frontMatter struct {
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Difficulty string   `yaml:"difficulty"`
	Category   string   `yaml:"category"`
	Tags       []string `yaml:"tags,omitempty"`
	Language   string   `yaml:"language"`
	Approach   string   `yaml:"approach"`
	Runtime    string   `yaml:"runtime,omitempty"`
	Memory     string   `yaml:"memory,omitempty"`
}

// RenderMarkdown builds the problem write-up.
func RenderMarkdown(note model.ProblemNote) (string, error) {
	sub := note.Submission
	detail := sub.ProblemDetails
	link := leetcode.ProblemLink(sub.TitleSlug)
	codeFile := note.BaseName + "." + note.Language.Extension

	fm, err := yaml.Marshal(frontMatter{
		Title:      sub.Title,
		Slug:       sub.TitleSlug,
		Difficulty: displayDifficulty(detail),
		Category:   note.Category,
		Tags:       detail.TagNames(),
		Language:   note.Language.Name,
		Approach:   note.Explanation.Bucket,
		Runtime:    sub.Runtime,
		Memory:     sub.Memory,
	})
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n\n", sub.Title)

	b.WriteString("## Problem Statement\n\n")
	fmt.Fprintf(&b, "**LeetCode Link:** %s\n\n", link)
	if statement := leetcode.HTMLToText(detail.Content); statement != "" {
		b.WriteString(statement)
		b.WriteString("\n\n")
	} else {
		fmt.Fprintf(&b, "Visit the [LeetCode problem page](%s) for the complete problem statement, examples, and constraints.\n\n", link)
	}

	exp := note.Explanation
	fmt.Fprintf(&b, "## Intuition\n\n%s\n\n", exp.Intuition)
	fmt.Fprintf(&b, "## Approach\n\n%s\n\n", exp.Approach)
	b.WriteString("### Algorithm\n")
	for i, step := range exp.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n### Implementation Notes\n")
	fmt.Fprintf(&b, "- **Runtime:** %s\n", orNA(sub.Runtime))
	fmt.Fprintf(&b, "- **Memory:** %s\n", orNA(sub.Memory))
	fmt.Fprintf(&b, "- **Tags:** %s\n", tagList(detail))
	fmt.Fprintf(&b, "- **Difficulty:** %s\n\n", displayDifficulty(detail))

	b.WriteString("## Complexity Analysis\n\n")
	fmt.Fprintf(&b, "- **Time Complexity:** %s\n", exp.TimeComplexity)
	fmt.Fprintf(&b, "- **Space Complexity:** %s\n\n", exp.SpaceComplexity)

	b.WriteString("## Edge Cases\n\n")
	for _, ec := range exp.EdgeCases {
		fmt.Fprintf(&b, "- %s\n", ec)
	}

	if len(detail.Hints) > 0 {
		b.WriteString("\n## Hints\n\n")
		for _, h := range detail.Hints {
			fmt.Fprintf(&b, "- %s\n", leetcode.HTMLToText(h))
		}
	}

	b.WriteString("\n## Solution Code\n\n")
	fmt.Fprintf(&b, "See the solution implementation in: [`%s`](./%s)\n", codeFile, codeFile)
	return b.String(), nil
}

// RenderSource prefixes the submitted code with a header comment in the
// syntax of its language.
func RenderSource(note model.ProblemNote) string {
	sub := note.Submission
	detail := sub.ProblemDetails
	header := []string{
		"LeetCode Problem: " + sub.Title,
		"",
		"Problem Link: " + leetcode.ProblemLink(sub.TitleSlug),
		"",
		"Difficulty: " + displayDifficulty(detail),
		"Tags: " + tagList(detail),
		"",
		"Runtime: " + orNA(sub.Runtime),
		"Memory: " + orNA(sub.Memory),
		"",
		"See problem details in: " + note.BaseName + ".md",
	}

	var b strings.Builder
	if prefix := note.Language.LinePrefix; prefix != "" {
		for _, line := range header {
			b.WriteString(strings.TrimRight(prefix+" "+line, " "))
			b.WriteByte('\n')
		}
	} else {
		b.WriteString("/**\n")
		for _, line := range header {
			b.WriteString(strings.TrimRight(" * "+line, " "))
			b.WriteByte('\n')
		}
		b.WriteString(" */\n")
	}
	b.WriteString("\n")
	b.WriteString(sub.Code)
	if !strings.HasSuffix(sub.Code, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

func displayDifficulty(detail model.ProblemDetail) string {
	if detail.Difficulty == "" {
		return "Medium"
	}
	return detail.Difficulty
}

func tagList(detail model.ProblemDetail) string {
	names := detail.TagNames()
	if len(names) == 0 {
		return "N/A"
	}
	return strings.Join(names, ", ")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
