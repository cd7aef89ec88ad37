package hld

import "regexp"

var (
	hldHeader     = regexp.MustCompile(`(?i)#\s*[34]\.?\s*High[\s-]?Level\s+(Design|Architecture)`)
	mermaidBlock  = regexp.MustCompile("(?s)```mermaid\n.*?```\n")
	blankRuns     = regexp.MustCompile(`\n{4,}`)
	numberedTitle = regexp.MustCompile(`\n##\s+\d+\.`)
)

// Result describes what Apply did to a document.
type Result struct {
	Content string
	// HasSection is false when no high-level design heading was found; the
	// content then only had its references stripped.
	HasSection bool
	Removed    int
}

// Apply strips references and replaces any diagrams in the high-level design
// section with a freshly rendered one, placed just before the next numbered
// section (or at the end of the document).
func Apply(content, title string) Result {
	content = StripReferences(content)

	loc := hldHeader.FindStringIndex(content)
	if loc == nil {
		return Result{Content: content}
	}
	pos := loc[1]

	section := content[pos:]
	blocks := mermaidBlock.FindAllStringIndex(section, -1)
	if len(blocks) > 0 {
		section = mermaidBlock.ReplaceAllString(section, "")
		section = blankRuns.ReplaceAllString(section, "\n\n\n")
		content = content[:pos] + section
	}

	insert := len(content)
	if next := numberedTitle.FindStringIndex(content[pos:]); next != nil {
		insert = pos + next[0]
	}

	diagram := RenderDiagram(content, title)
	return Result{
		Content:    content[:insert] + "\n\n" + diagram + "\n\n" + content[insert:],
		HasSection: true,
		Removed:    len(blocks),
	}
}
