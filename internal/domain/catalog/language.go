package catalog

import (
	"strings"

	"dsa-notes/internal/domain/model"
)

var (
	Python = model.Language{Name: "python", Extension: "py", LinePrefix: "#"}
	Java   = model.Language{Name: "java", Extension: "java"}
	Cpp    = model.Language{Name: "cpp", Extension: "cpp"}
)

// Language resolves the reported language name of a submission. Unknown
// languages are written as Java.
func Language(name string) model.Language {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "python"):
		return Python
	case strings.Contains(lower, "java"):
		return Java
	case strings.Contains(lower, "cpp"), strings.Contains(lower, "c++"):
		return Cpp
	default:
		return Java
	}
}
