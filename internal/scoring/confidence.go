package scoring

// Confidence is the coarse tier a score falls into.
type Confidence string

const (
	High   Confidence = "high"
	Medium Confidence = "medium"
	Low    Confidence = "low"
)

// Thresholds on the final score. Keep these the only place tiers are decided.
const (
	HighThreshold   = 70
	MediumThreshold = 40
)

// ConfidenceFor buckets a final score.
func ConfidenceFor(score float64) Confidence {
	switch {
	case score >= HighThreshold:
		return High
	case score >= MediumThreshold:
		return Medium
	default:
		return Low
	}
}
