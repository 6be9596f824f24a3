package domain

// Question categories as the backend partitions them.
const (
	CategoryTechnical   = "technical"
	CategoryBehavioral  = "behavioral"
	CategorySituational = "situational"
)

// QuestionAnswer is one generated interview question plus the user's
// free-text answer. IDs are sequential from 1 and stable for the lifetime
// of one question set.
type QuestionAnswer struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EvaluationItem is per-question feedback from the evaluation endpoint.
type EvaluationItem struct {
	QuestionID   int    `json:"question_id"`
	Score        int    `json:"score"`
	FeedbackText string `json:"feedback_text"`
}

// Evaluation is the backend's structured response to a submitted answer set.
// Detailed may be shorter than the question set (unanswered questions), but
// every entry references a valid question id.
type Evaluation struct {
	Score    float64          `json:"score"`
	Feedback string           `json:"feedback"`
	Detailed []EvaluationItem `json:"detailed_feedback"`
}
