package model

// Explanation is a canned write-up selected from keyword buckets.
type Explanation struct {
	Bucket          string
	Intuition       string
	Approach        string
	Steps           []string
	TimeComplexity  string
	SpaceComplexity string
	EdgeCases       []string
}
