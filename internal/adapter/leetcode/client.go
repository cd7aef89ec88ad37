package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

const (
	DefaultBaseURL  = "https://leetcode.com"
	submissionsPath = "/api/submissions/"
	graphQLPath     = "/graphql/"
)

// ErrEmptyQuestion is returned when the GraphQL API has no question for a slug.
var ErrEmptyQuestion = errors.New("empty question data")

const questionContentQuery = `query questionContent($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId
    questionFrontendId
    title
    titleSlug
    content
    difficulty
    topicTags { name slug }
    hints
    sampleTestCase
    acRate
  }
}`

// Credentials are the two cookies of a logged-in browser session.
type Credentials struct {
	Session   string
	CSRFToken string
}

// Client implements SubmissionLister and ProblemDetailProvider against the
// LeetCode REST and GraphQL endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      Credentials
}

var (
	_ ports.SubmissionLister      = (*Client)(nil)
	_ ports.ProblemDetailProvider = (*Client)(nil)
)

// New creates a new LeetCode client. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, creds Credentials, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
	}
}

// ListSubmissions fetches one page of the signed-in user's submissions.
func (c *Client) ListSubmissions(ctx context.Context, cursor string, limit int) (model.SubmissionPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", "0")
	query.Set("lastkey", cursor)

	endpoint := c.baseURL + submissionsPath + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return model.SubmissionPage{}, fmt.Errorf("create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.SubmissionPage{}, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return model.SubmissionPage{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var payload struct {
		SubmissionsDump []model.Submission `json:"submissions_dump"`
		HasNext         bool               `json:"has_next"`
		LastKey         string             `json:"last_key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.SubmissionPage{}, fmt.Errorf("decode response: %w", err)
	}

	return model.SubmissionPage{
		Submissions: payload.SubmissionsDump,
		HasNext:     payload.HasNext,
		LastKey:     payload.LastKey,
	}, nil
}

// GetProblemDetail retrieves the question metadata for a title slug.
func (c *Client) GetProblemDetail(ctx context.Context, slug string) (model.ProblemDetail, error) {
	body, err := json.Marshal(map[string]any{
		"query":     questionContentQuery,
		"variables": map[string]string{"titleSlug": slug},
	})
	if err != nil {
		return model.ProblemDetail{}, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+graphQLPath, bytes.NewReader(body))
	if err != nil {
		return model.ProblemDetail{}, fmt.Errorf("create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ProblemDetail{}, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return model.ProblemDetail{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var gqlResp struct {
		Data struct {
			Question *model.ProblemDetail `json:"question"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return model.ProblemDetail{}, fmt.Errorf("decode response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return model.ProblemDetail{}, fmt.Errorf("graphql error: %s", gqlResp.Errors[0].Message)
	}
	if gqlResp.Data.Question == nil || gqlResp.Data.Question.TitleSlug == "" {
		return model.ProblemDetail{}, fmt.Errorf("%s: %w", slug, ErrEmptyQuestion)
	}

	return *gqlResp.Data.Question, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Cookie", fmt.Sprintf("LEETCODE_SESSION=%s; csrftoken=%s", c.creds.Session, c.creds.CSRFToken))
	req.Header.Set("X-CSRFToken", c.creds.CSRFToken)
	req.Header.Set("Referer", c.baseURL)
	req.Header.Set("Content-Type", "application/json")
}

// ProblemLink returns the public problem page for a slug.
func ProblemLink(slug string) string {
	return fmt.Sprintf("%s/problems/%s/", DefaultBaseURL, slug)
}
