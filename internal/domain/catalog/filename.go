package catalog

import (
	"regexp"
	"strings"
)

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	separatorRuns   = regexp.MustCompile(`[-\s]+`)
)

// SanitizeFilename turns a problem title into a lowercase hyphenated file
// name. Applying it twice gives the same result as applying it once.
func SanitizeFilename(title string) string {
	name := disallowedChars.ReplaceAllString(strings.ToLower(title), "")
	name = separatorRuns.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
