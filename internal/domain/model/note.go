package model

// Language describes how a solution file is named and commented.
type Language struct {
	Name      string
	Extension string
	// LinePrefix is set for languages without block comments.
	LinePrefix string
}

// ProblemNote is everything needed to write one markdown + source file pair.
type ProblemNote struct {
	Submission  Submission
	Category    string
	Difficulty  string
	BaseName    string
	Language    Language
	Explanation Explanation
}

