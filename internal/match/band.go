// Package match turns the backend's raw similarity percentage into what
// the score screen renders: a two-decimal display value, a qualitative
// band, and a one-line explanation.
package match

import "fmt"

const (
	BandHigh   = "high"
	BandMedium = "medium"
	BandLow    = "low"
)

// Band buckets a 0-100 score. Thresholds are exclusive: exactly 80 is
// medium, exactly 60 is low.
func Band(score float64) string {
	switch {
	case score > 80:
		return BandHigh
	case score > 60:
		return BandMedium
	default:
		return BandLow
	}
}

func Display(score float64) string {
	return fmt.Sprintf("%.2f%%", score)
}

func Explanation(score float64) string {
	return fmt.Sprintf(
		"Your resume and this job description share %.2f%% similarity based on semantic embeddings.",
		score)
}
