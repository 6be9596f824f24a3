package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobportal-engine/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, NewHostLimiter(100, 100))
}

func TestFetchJobs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/fetch_jobs" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("keywords") != "software engineer" || q.Get("location") != "india" || q.Get("page") != "2" {
			t.Errorf("query = %v", q)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jobs":          []map[string]any{{"id": "1", "title": "Go Developer"}},
			"total_results": 45,
		})
	})

	jobs, total, err := c.FetchJobs(context.Background(), "software engineer", "india", 2)
	if err != nil {
		t.Fatalf("FetchJobs: %v", err)
	}
	if total != 45 || len(jobs) != 1 || jobs[0].Title != "Go Developer" {
		t.Errorf("jobs=%v total=%d", jobs, total)
	}
}

func TestErrorEnvelopeSurfacedVerbatim(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		_, _ = w.Write([]byte(`{"error":"Adzuna API keys not configured. Please contact the administrator."}`))
	})

	_, _, err := c.FetchJobs(context.Background(), "x", "y", 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Adzuna API keys not configured. Please contact the administrator." {
		t.Errorf("error = %q, want server message verbatim", err)
	}
}

func TestErrorWithoutEnvelopeFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 502)
	})
	_, _, err := c.FetchJobs(context.Background(), "x", "y", 1)
	if err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Errorf("error = %v, want generic status message", err)
	}
}

func TestMatchScore_MultipartForwarded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		f, hdr, err := r.FormFile("resume_file")
		if err != nil {
			t.Fatalf("resume_file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "resume.pdf" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		if got := r.FormValue("job_description_text"); got != "build Go services" {
			t.Errorf("job_description_text = %q", got)
		}
		_, _ = w.Write([]byte(`{"match_score": 92.5}`))
	})

	score, err := c.MatchScore(context.Background(), "resume.pdf",
		strings.NewReader("%PDF-1.4 fake"), "build Go services")
	if err != nil {
		t.Fatalf("MatchScore: %v", err)
	}
	if score != 92.5 {
		t.Errorf("score = %v", score)
	}
}

func TestMatchScore_MissingFieldIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	_, err := c.MatchScore(context.Background(), "r.txt", strings.NewReader("text"), "desc")
	if err == nil || !strings.Contains(err.Error(), "match_score") {
		t.Errorf("error = %v, want missing match_score", err)
	}
}

func TestGenerateQuestions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req QuestionsRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.JobRole != "Backend Engineer" || req.NumTechnical != 3 || req.NumBehavioral != 2 || req.NumSituational != 2 {
			t.Errorf("request = %+v", req)
		}
		_, _ = w.Write([]byte(`{"questions":{
			"technical_questions":["t1","t2","t3"],
			"behavioral_questions":["b1","b2"],
			"situational_questions":["s1","s2"]}}`))
	})

	qs, err := c.GenerateQuestions(context.Background(), QuestionsRequest{
		JobRole: "Backend Engineer", ContextKeywords: "go, sql",
		NumTechnical: 3, NumBehavioral: 2, NumSituational: 2,
	})
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(qs.Technical) != 3 || len(qs.Behavioral) != 2 || len(qs.Situational) != 2 {
		t.Errorf("question set = %+v", qs)
	}
	if qs.Empty() {
		t.Error("non-empty set reported Empty")
	}
}

func TestGenerateTechnicalQuestions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate_technical_questions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"questions":["q1","q2"]}`))
	})
	qs, err := c.GenerateTechnicalQuestions(context.Background(), "SRE", "desc", 2)
	if err != nil || len(qs) != 2 {
		t.Errorf("qs=%v err=%v", qs, err)
	}
}

func TestEvaluateAnswers_SendsBlanksToo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JobDetails struct {
				Title string `json:"title"`
			} `json:"job_details"`
			QA []domain.QuestionAnswer `json:"questions_and_answers"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.JobDetails.Title != "Go Developer" {
			t.Errorf("job title = %q", req.JobDetails.Title)
		}
		if len(req.QA) != 2 || req.QA[1].Answer != "" {
			t.Errorf("expected every question including blanks, got %+v", req.QA)
		}
		_, _ = w.Write([]byte(`{"score":75,"feedback":"Good effort.","detailed_feedback":[{"question_id":1,"score":75,"feedback_text":"ok"}]}`))
	})

	ev, err := c.EvaluateAnswers(context.Background(),
		domain.JobRecord{Title: "Go Developer", Description: "d"},
		[]domain.QuestionAnswer{
			{ID: 1, Type: domain.CategoryTechnical, Question: "q1", Answer: "a1"},
			{ID: 2, Type: domain.CategoryBehavioral, Question: "q2", Answer: ""},
		})
	if err != nil {
		t.Fatalf("EvaluateAnswers: %v", err)
	}
	if ev.Score != 75 || len(ev.Detailed) != 1 || ev.Detailed[0].QuestionID != 1 {
		t.Errorf("evaluation = %+v", ev)
	}
}

func TestEvaluateTechnicalAnswers_Path(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/evaluate_technical_answers" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"score":60,"feedback":"","detailed_feedback":[]}`))
	})
	if _, err := c.EvaluateTechnicalAnswers(context.Background(), domain.JobRecord{Title: "t"}, nil); err != nil {
		t.Fatalf("EvaluateTechnicalAnswers: %v", err)
	}
}
