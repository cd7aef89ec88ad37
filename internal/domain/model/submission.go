package model

import "strings"

// StatusAccepted is the judge verdict of a submission that passed every test.
const StatusAccepted = "Accepted"

// Submission is one judged run as returned by the submissions list endpoint,
// optionally enriched with the problem detail.
type Submission struct {
	ID             int64         `json:"id"`
	QuestionID     int64         `json:"question_id,omitempty"`
	Title          string        `json:"title"`
	TitleSlug      string        `json:"title_slug"`
	Code           string        `json:"code"`
	Lang           string        `json:"lang,omitempty"`
	LangName       string        `json:"lang_name"`
	Runtime        string        `json:"runtime"`
	Memory         string        `json:"memory"`
	StatusDisplay  string        `json:"status_display"`
	Timestamp      int64         `json:"timestamp,omitempty"`
	URL            string        `json:"url,omitempty"`
	ProblemDetails ProblemDetail `json:"problem_details"`
}

// Accepted reports whether the submission passed all test cases.
func (s Submission) Accepted() bool {
	return strings.EqualFold(strings.TrimSpace(s.StatusDisplay), StatusAccepted)
}

// SubmissionPage is a single page of the submissions listing.
type SubmissionPage struct {
	Submissions []Submission
	HasNext     bool
	LastKey     string
}
