package model

import "strings"

// TopicTag is a topic label attached to a problem.
type TopicTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProblemDetail holds the question metadata fetched once per unique problem.
// A zero value means the detail was unavailable.
type ProblemDetail struct {
	QuestionID         string     `json:"questionId,omitempty"`
	QuestionFrontendID string     `json:"questionFrontendId,omitempty"`
	Title              string     `json:"title,omitempty"`
	TitleSlug          string     `json:"titleSlug,omitempty"`
	Content            string     `json:"content,omitempty"`
	Difficulty         string     `json:"difficulty,omitempty"`
	TopicTags          []TopicTag `json:"topicTags,omitempty"`
	Hints              []string   `json:"hints,omitempty"`
	SampleTestCase     string     `json:"sampleTestCase,omitempty"`
	ACRate             float64    `json:"acRate,omitempty"`
}

// Empty reports whether no detail was attached.
func (p ProblemDetail) Empty() bool {
	return p.TitleSlug == "" && p.Title == "" && p.Difficulty == "" && len(p.TopicTags) == 0
}

// TagSlugs returns the lowercased tag slugs in their original order.
func (p ProblemDetail) TagSlugs() []string {
	slugs := make([]string, 0, len(p.TopicTags))
	for _, tag := range p.TopicTags {
		slugs = append(slugs, strings.ToLower(tag.Slug))
	}
	return slugs
}

// TagNames returns the display names of the tags.
func (p ProblemDetail) TagNames() []string {
	names := make([]string, 0, len(p.TopicTags))
	for _, tag := range p.TopicTags {
		names = append(names, tag.Name)
	}
	return names
}
