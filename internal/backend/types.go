package backend

import "jobportal-engine/internal/domain"

// QuestionSet is the category-partitioned generation result.
type QuestionSet struct {
	Technical   []string `json:"technical_questions"`
	Behavioral  []string `json:"behavioral_questions"`
	Situational []string `json:"situational_questions"`
}

func (q QuestionSet) Empty() bool {
	return len(q.Technical)+len(q.Behavioral)+len(q.Situational) == 0
}

// QuestionsRequest mirrors POST /api/generate_interview_questions.
type QuestionsRequest struct {
	JobRole         string `json:"job_role"`
	ContextKeywords string `json:"context_keywords"`
	NumTechnical    int    `json:"num_technical"`
	NumBehavioral   int    `json:"num_behavioral"`
	NumSituational  int    `json:"num_situational"`
}

type fetchJobsResponse struct {
	Jobs         []domain.JobRecord `json:"jobs"`
	TotalResults int                `json:"total_results"`
}

type coursesRequest struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	TopN           int    `json:"top_n"`
}

type coursesResponse struct {
	Courses []domain.CourseRecommendation `json:"courses"`
}

type matchScoreResponse struct {
	// Pointer so a 2xx body without the field is detectable.
	MatchScore *float64 `json:"match_score"`
}

type questionsResponse struct {
	Questions QuestionSet `json:"questions"`
}

type technicalQuestionsRequest struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	NumQuestions   int    `json:"num_questions"`
}

type technicalQuestionsResponse struct {
	Questions []string `json:"questions"`
}

type evaluateRequest struct {
	JobDetails struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"job_details"`
	QuestionsAndAnswers []domain.QuestionAnswer `json:"questions_and_answers"`
}

// apiError is the backend's non-2xx envelope: {"error": "..."}.
type apiError struct {
	Error string `json:"error"`
}
