// Package interview runs the question/answer workflow:
//
//	loading-questions → answering → evaluating → showing-results
//
// with an error phase reachable from loading (no job context, generation
// failure, empty set) and an evaluation failure that returns to answering
// with the answers intact. A finished flow is immutable; starting a new
// flow is the only way to re-submit.
package interview

import (
	"context"
	"strings"
	"sync"

	"jobportal-engine/internal/backend"
	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/jobctx"
)

type Phase string

const (
	PhaseLoadingQuestions Phase = "loading-questions"
	PhaseAnswering        Phase = "answering"
	PhaseEvaluating       Phase = "evaluating"
	PhaseShowingResults   Phase = "showing-results"
	PhaseError            Phase = "error"
)

const (
	msgNoContext    = "No job context found. Please select a job to start practicing."
	msgNoQuestions  = "The AI could not generate questions for this role. You can try another role."
	msgAllBlank     = "Please provide an answer to at least one question."
	msgNotAnswering = "answers can only change while the flow is in the answering phase"
)

// Client is the slice of the backend client the flow needs.
type Client interface {
	GenerateQuestions(ctx context.Context, req backend.QuestionsRequest) (backend.QuestionSet, error)
	EvaluateAnswers(ctx context.Context, job domain.JobRecord, qa []domain.QuestionAnswer) (domain.Evaluation, error)
}

// Options carries the per-category question counts.
type Options struct {
	NumTechnical   int
	NumBehavioral  int
	NumSituational int
}

// State is the renderable snapshot of the flow.
type State struct {
	Phase     Phase                   `json:"phase"`
	Job       domain.JobRecord        `json:"job"`
	Questions []domain.QuestionAnswer `json:"questions"`
	Result    *domain.Evaluation      `json:"result,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

type Flow struct {
	client  Client
	store   jobctx.Store
	opts    Options
	onEvent func(typ string)

	mu        sync.Mutex
	phase     Phase
	job       domain.JobRecord
	questions []domain.QuestionAnswer
	result    *domain.Evaluation
	errMsg    string
}

func NewFlow(client Client, store jobctx.Store, opts Options, onEvent func(string)) *Flow {
	return &Flow{client: client, store: store, opts: opts, onEvent: onEvent, phase: PhaseLoadingQuestions}
}

func (f *Flow) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() State {
	qs := make([]domain.QuestionAnswer, len(f.questions))
	copy(qs, f.questions)
	return State{Phase: f.phase, Job: f.job, Questions: qs, Result: f.result, Error: f.errMsg}
}

// Start resolves the job context (navigation state wins over the persisted
// record), persists it on first receipt, then loads the question set. With
// no context anywhere it lands in the error phase without touching the
// backend.
func (f *Flow) Start(ctx context.Context, navJob *domain.JobRecord) State {
	f.mu.Lock()
	switch {
	case navJob != nil && navJob.Usable():
		f.job = *navJob
		_ = f.store.Set(ctx, f.job)
	default:
		saved, ok, err := f.store.Get(ctx)
		if err != nil || !ok {
			f.phase = PhaseError
			f.errMsg = msgNoContext
			st := f.snapshotLocked()
			f.mu.Unlock()
			return st
		}
		f.job = saved
	}
	f.phase = PhaseLoadingQuestions
	f.errMsg = ""
	job := f.job
	f.mu.Unlock()

	set, err := f.client.GenerateQuestions(ctx, backend.QuestionsRequest{
		JobRole:         job.Title,
		ContextKeywords: job.Description,
		NumTechnical:    f.opts.NumTechnical,
		NumBehavioral:   f.opts.NumBehavioral,
		NumSituational:  f.opts.NumSituational,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseLoadingQuestions {
		return f.snapshotLocked()
	}
	if err != nil {
		f.phase = PhaseError
		f.errMsg = err.Error()
		return f.snapshotLocked()
	}
	if set.Empty() {
		f.phase = PhaseError
		f.errMsg = msgNoQuestions
		return f.snapshotLocked()
	}

	f.questions = numberQuestions(set)
	f.phase = PhaseAnswering
	f.emit("questions_ready")
	return f.snapshotLocked()
}

// numberQuestions flattens the category-partitioned set into one ordered
// list with ids sequential from 1.
func numberQuestions(set backend.QuestionSet) []domain.QuestionAnswer {
	var out []domain.QuestionAnswer
	id := 1
	add := func(typ string, qs []string) {
		for _, q := range qs {
			out = append(out, domain.QuestionAnswer{ID: id, Type: typ, Question: q})
			id++
		}
	}
	add(domain.CategoryTechnical, set.Technical)
	add(domain.CategoryBehavioral, set.Behavioral)
	add(domain.CategorySituational, set.Situational)
	return out
}

// SetAnswers records edits to any subset of answers. Unknown ids are
// ignored; edits outside the answering phase are rejected.
func (f *Flow) SetAnswers(answers map[int]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseAnswering {
		return errPhase(msgNotAnswering)
	}
	for i := range f.questions {
		if a, ok := answers[f.questions[i].ID]; ok {
			f.questions[i].Answer = a
		}
	}
	f.errMsg = ""
	return nil
}

// Submit evaluates the full question/answer set, blanks included. An
// all-blank set is rejected client-side with no backend call. Evaluation
// failure returns the flow to answering with answers preserved.
func (f *Flow) Submit(ctx context.Context) State {
	f.mu.Lock()
	if f.phase != PhaseAnswering {
		st := f.snapshotLocked()
		f.mu.Unlock()
		return st
	}

	allBlank := true
	for _, q := range f.questions {
		if strings.TrimSpace(q.Answer) != "" {
			allBlank = false
			break
		}
	}
	if allBlank {
		f.errMsg = msgAllBlank
		st := f.snapshotLocked()
		f.mu.Unlock()
		return st
	}

	f.phase = PhaseEvaluating
	f.errMsg = ""
	job := f.job
	qa := make([]domain.QuestionAnswer, len(f.questions))
	copy(qa, f.questions)
	f.mu.Unlock()

	result, err := f.client.EvaluateAnswers(ctx, job, qa)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseEvaluating {
		return f.snapshotLocked()
	}
	if err != nil {
		f.phase = PhaseAnswering
		f.errMsg = err.Error()
		return f.snapshotLocked()
	}
	f.result = &result
	f.phase = PhaseShowingResults
	f.emit("evaluation_ready")
	return f.snapshotLocked()
}

func (f *Flow) emit(typ string) {
	if f.onEvent != nil {
		f.onEvent(typ)
	}
}

type errPhase string

func (e errPhase) Error() string { return string(e) }
