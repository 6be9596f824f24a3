package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobportal-engine/internal/backend"
	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/jobctx"
)

type fakeClient struct {
	set     backend.QuestionSet
	genErr  error
	eval    domain.Evaluation
	evalErr error

	genCalls  int
	evalCalls int
	gotReq    backend.QuestionsRequest
	gotQA     []domain.QuestionAnswer
}

func (f *fakeClient) GenerateQuestions(ctx context.Context, req backend.QuestionsRequest) (backend.QuestionSet, error) {
	f.genCalls++
	f.gotReq = req
	return f.set, f.genErr
}

func (f *fakeClient) EvaluateAnswers(ctx context.Context, job domain.JobRecord, qa []domain.QuestionAnswer) (domain.Evaluation, error) {
	f.evalCalls++
	f.gotQA = qa
	return f.eval, f.evalErr
}

func fullSet() backend.QuestionSet {
	return backend.QuestionSet{
		Technical:   []string{"T1", "T2", "T3"},
		Behavioral:  []string{"B1", "B2"},
		Situational: []string{"S1", "S2"},
	}
}

func practiceJob() *domain.JobRecord {
	return &domain.JobRecord{ID: "j1", Title: "Backend Engineer", Description: "Go services"}
}

func newAnsweringFlow(t *testing.T, client *fakeClient) *Flow {
	t.Helper()
	f := NewFlow(client, &jobctx.Memory{}, Options{NumTechnical: 3, NumBehavioral: 2, NumSituational: 2}, nil)
	st := f.Start(context.Background(), practiceJob())
	if st.Phase != PhaseAnswering {
		t.Fatalf("phase after start = %q: %s", st.Phase, st.Error)
	}
	return f
}

func TestStart_NumbersQuestionsByCategory(t *testing.T) {
	client := &fakeClient{set: fullSet()}
	f := newAnsweringFlow(t, client)

	st := f.Snapshot()
	if len(st.Questions) != 7 {
		t.Fatalf("len(questions) = %d, want 7", len(st.Questions))
	}
	wantTypes := []string{
		domain.CategoryTechnical, domain.CategoryTechnical, domain.CategoryTechnical,
		domain.CategoryBehavioral, domain.CategoryBehavioral,
		domain.CategorySituational, domain.CategorySituational,
	}
	for i, q := range st.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if q.Type != wantTypes[i] {
			t.Errorf("question %d type = %q, want %q", i, q.Type, wantTypes[i])
		}
		if q.Answer != "" {
			t.Errorf("question %d starts with answer %q", i, q.Answer)
		}
	}
	if client.gotReq.JobRole != "Backend Engineer" || client.gotReq.NumTechnical != 3 {
		t.Errorf("request = %+v", client.gotReq)
	}
}

func TestStart_PersistsNavigationJob(t *testing.T) {
	store := &jobctx.Memory{}
	f := NewFlow(&fakeClient{set: fullSet()}, store, Options{}, nil)
	f.Start(context.Background(), practiceJob())

	saved, ok, err := store.Get(context.Background())
	if err != nil || !ok {
		t.Fatalf("job not persisted: ok=%v err=%v", ok, err)
	}
	if saved.ID != "j1" {
		t.Errorf("persisted job id = %q", saved.ID)
	}
}

func TestStart_FallsBackToPersistedJob(t *testing.T) {
	store := &jobctx.Memory{}
	store.Set(context.Background(), *practiceJob())
	client := &fakeClient{set: fullSet()}
	f := NewFlow(client, store, Options{}, nil)

	st := f.Start(context.Background(), nil)
	if st.Phase != PhaseAnswering {
		t.Fatalf("phase = %q: %s", st.Phase, st.Error)
	}
	if st.Job.ID != "j1" {
		t.Errorf("job = %+v", st.Job)
	}
}

func TestStart_NoContextAnywhere(t *testing.T) {
	client := &fakeClient{set: fullSet()}
	f := NewFlow(client, &jobctx.Memory{}, Options{}, nil)

	st := f.Start(context.Background(), nil)
	if st.Phase != PhaseError {
		t.Fatalf("phase = %q", st.Phase)
	}
	if !strings.Contains(st.Error, "No job context found") {
		t.Errorf("error = %q", st.Error)
	}
	if client.genCalls != 0 {
		t.Error("generation should not run without a job context")
	}
}

func TestStart_EmptySetIsAnError(t *testing.T) {
	f := NewFlow(&fakeClient{}, &jobctx.Memory{}, Options{}, nil)
	st := f.Start(context.Background(), practiceJob())
	if st.Phase != PhaseError {
		t.Fatalf("phase = %q", st.Phase)
	}
	if !strings.Contains(st.Error, "could not generate questions") {
		t.Errorf("error = %q", st.Error)
	}
}

func TestStart_GenerationFailure(t *testing.T) {
	f := NewFlow(&fakeClient{genErr: errors.New("backend unreachable")}, &jobctx.Memory{}, Options{}, nil)
	st := f.Start(context.Background(), practiceJob())
	if st.Phase != PhaseError || st.Error != "backend unreachable" {
		t.Errorf("state = %q / %q", st.Phase, st.Error)
	}
}

func TestSubmit_AllBlankBlockedLocally(t *testing.T) {
	client := &fakeClient{set: fullSet()}
	f := newAnsweringFlow(t, client)

	st := f.Submit(context.Background())
	if st.Phase != PhaseAnswering {
		t.Fatalf("phase = %q", st.Phase)
	}
	if !strings.Contains(st.Error, "at least one question") {
		t.Errorf("error = %q", st.Error)
	}
	if client.evalCalls != 0 {
		t.Error("all-blank submit must not reach the backend")
	}
}

func TestSubmit_SendsBlanksAlongside(t *testing.T) {
	client := &fakeClient{set: fullSet(), eval: domain.Evaluation{Score: 7.5, Feedback: "good"}}
	f := newAnsweringFlow(t, client)

	if err := f.SetAnswers(map[int]string{2: "use indexes"}); err != nil {
		t.Fatal(err)
	}
	st := f.Submit(context.Background())
	if st.Phase != PhaseShowingResults {
		t.Fatalf("phase = %q: %s", st.Phase, st.Error)
	}
	if st.Result == nil || st.Result.Score != 7.5 {
		t.Errorf("result = %+v", st.Result)
	}
	if len(client.gotQA) != 7 {
		t.Fatalf("evaluation payload has %d entries, want all 7", len(client.gotQA))
	}
	if client.gotQA[1].Answer != "use indexes" || client.gotQA[0].Answer != "" {
		t.Errorf("payload answers = %q / %q", client.gotQA[0].Answer, client.gotQA[1].Answer)
	}
}

func TestSubmit_EvaluationFailureKeepsAnswers(t *testing.T) {
	client := &fakeClient{set: fullSet(), evalErr: errors.New("evaluation timed out")}
	f := newAnsweringFlow(t, client)
	f.SetAnswers(map[int]string{1: "first answer"})

	st := f.Submit(context.Background())
	if st.Phase != PhaseAnswering {
		t.Fatalf("phase = %q, want answering after a failed evaluation", st.Phase)
	}
	if st.Error != "evaluation timed out" {
		t.Errorf("error = %q", st.Error)
	}
	if st.Questions[0].Answer != "first answer" {
		t.Errorf("answer lost: %q", st.Questions[0].Answer)
	}
}

func TestResultsAreFinal(t *testing.T) {
	client := &fakeClient{set: fullSet(), eval: domain.Evaluation{Score: 5}}
	f := newAnsweringFlow(t, client)
	f.SetAnswers(map[int]string{1: "a"})
	f.Submit(context.Background())

	if err := f.SetAnswers(map[int]string{1: "edited"}); err == nil {
		t.Error("answers should be locked after results")
	}
	st := f.Submit(context.Background())
	if st.Phase != PhaseShowingResults {
		t.Errorf("phase = %q", st.Phase)
	}
	if client.evalCalls != 1 {
		t.Errorf("evalCalls = %d, want 1", client.evalCalls)
	}
}
