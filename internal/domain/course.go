package domain

// CourseRecommendation is one course returned by the recommendation
// endpoint. Relevance arrives pre-formatted ("87.5%").
type CourseRecommendation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Skills      string  `json:"skills_taught"`
	Description string  `json:"description_snippet"`
	Relevance   string  `json:"relevance"`
	Similarity  float64 `json:"similarity_score"`
}
