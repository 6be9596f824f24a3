// Package backend is the HTTP client for the job-portal backend: job
// search plus the AI endpoints (match score, course recommendations,
// interview question generation and answer evaluation).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobportal-engine/internal/domain"
)

type Client struct {
	base    string
	hc      *http.Client
	limiter *HostLimiter
}

func New(baseURL string, timeout time.Duration, limiter *HostLimiter) *Client {
	return &Client{
		base:    baseURL,
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// FetchJobs issues the paginated job search. Pages are 1-based, 20 results
// per page on the backend side.
func (c *Client) FetchJobs(ctx context.Context, keywords, location string, page int) ([]domain.JobRecord, int, error) {
	q := url.Values{}
	q.Set("keywords", keywords)
	q.Set("location", location)
	q.Set("page", strconv.Itoa(page))

	var out fetchJobsResponse
	if err := c.getJSON(ctx, "/api/fetch_jobs?"+q.Encode(), &out); err != nil {
		return nil, 0, err
	}
	return out.Jobs, out.TotalResults, nil
}

// PredictCourses posts the job context to the recommendation endpoint.
// An empty list is a valid result, not an error.
func (c *Client) PredictCourses(ctx context.Context, jobTitle, jobDescription string, topN int) ([]domain.CourseRecommendation, error) {
	req := coursesRequest{JobTitle: jobTitle, JobDescription: jobDescription, TopN: topN}
	var out coursesResponse
	if err := c.postJSON(ctx, "/api/predict_courses", req, &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// MatchScore uploads the resume plus the job description as multipart form
// data and returns the similarity percentage.
func (c *Client) MatchScore(ctx context.Context, filename string, resume io.Reader, jobDescription string) (float64, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("resume_file", filename)
	if err != nil {
		return 0, fmt.Errorf("match score form: %w", err)
	}
	if _, err := io.Copy(fw, resume); err != nil {
		return 0, fmt.Errorf("match score copy: %w", err)
	}
	if err := mw.WriteField("job_description_text", jobDescription); err != nil {
		return 0, fmt.Errorf("match score form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return 0, fmt.Errorf("match score form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/match_score", &body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out matchScoreResponse
	if err := c.do(req, &out); err != nil {
		return 0, err
	}
	if out.MatchScore == nil {
		return 0, fmt.Errorf("backend response missing match_score")
	}
	return *out.MatchScore, nil
}

// GenerateQuestions requests the category-partitioned question set.
func (c *Client) GenerateQuestions(ctx context.Context, req QuestionsRequest) (QuestionSet, error) {
	var out questionsResponse
	if err := c.postJSON(ctx, "/api/generate_interview_questions", req, &out); err != nil {
		return QuestionSet{}, err
	}
	return out.Questions, nil
}

// GenerateTechnicalQuestions requests the flat technical-only set.
func (c *Client) GenerateTechnicalQuestions(ctx context.Context, jobTitle, jobDescription string, n int) ([]string, error) {
	req := technicalQuestionsRequest{JobTitle: jobTitle, JobDescription: jobDescription, NumQuestions: n}
	var out technicalQuestionsResponse
	if err := c.postJSON(ctx, "/api/generate_technical_questions", req, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// EvaluateAnswers submits the full question/answer set, blanks included.
func (c *Client) EvaluateAnswers(ctx context.Context, job domain.JobRecord, qa []domain.QuestionAnswer) (domain.Evaluation, error) {
	return c.evaluate(ctx, "/api/evaluate_answers", job, qa)
}

// EvaluateTechnicalAnswers is the flat-variant evaluation endpoint.
func (c *Client) EvaluateTechnicalAnswers(ctx context.Context, job domain.JobRecord, qa []domain.QuestionAnswer) (domain.Evaluation, error) {
	return c.evaluate(ctx, "/api/evaluate_technical_answers", job, qa)
}

func (c *Client) evaluate(ctx context.Context, path string, job domain.JobRecord, qa []domain.QuestionAnswer) (domain.Evaluation, error) {
	var req evaluateRequest
	req.JobDetails.Title = job.Title
	req.JobDetails.Description = job.Description
	req.QuestionsAndAnswers = qa

	var out domain.Evaluation
	if err := c.postJSON(ctx, path, req, &out); err != nil {
		return domain.Evaluation{}, err
	}
	return out, nil
}

// ---- plumbing ----

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", "JobPortalEngine/1.0 (+local)")

	if c.limiter != nil {
		if err := c.limiter.WaitURL(req.Context(), req.URL.String()); err != nil {
			return err
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s: %w", req.URL.Path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Non-2xx bodies carry {"error": "..."}; surface it verbatim.
		var apiErr apiError
		b, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
		if json.Unmarshal(b, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("backend %s: status %d", req.URL.Path, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("backend %s: decode: %w", req.URL.Path, err)
	}
	return nil
}
