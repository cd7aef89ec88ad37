// Package hld cleans system design write-ups and adds a high-level design
// diagram built from the components mentioned in the prose.
package hld

import "regexp"

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

// referenceRules run in order: the folder sentence and links must go before
// the bare site name is dropped, otherwise they would never match.
var referenceRules = []replacement{
	{regexp.MustCompile(`(?i)This folder contains .* from AlgoMaster\.io`), "This folder contains system design examples and solutions"},
	{regexp.MustCompile(`https://algomaster\.io/[^\s)]+`), ""},
	{regexp.MustCompile(`(?i)from AlgoMaster\.io`), ""},
	{regexp.MustCompile(`(?i)AlgoMaster System Design Interviews`), "System Design Examples"},
	{regexp.MustCompile(`(?i)AlgoMaster\.io`), ""},
}

// StripReferences removes every mention of the third-party course site.
func StripReferences(content string) string {
	for _, r := range referenceRules {
		content = r.pattern.ReplaceAllString(content, r.with)
	}
	return content
}
