package catalog

import "strings"

// DifficultyFolder maps a judge difficulty to a folder name, defaulting to "medium".
func DifficultyFolder(difficulty string) string {
	switch d := strings.ToLower(strings.TrimSpace(difficulty)); d {
	case "easy", "medium", "hard":
		return d
	default:
		return "medium"
	}
}
