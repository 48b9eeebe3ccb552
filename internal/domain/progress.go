package domain

import "time"

// ProgressRecord is the per-learner, per-category performance history
// carried across sessions.
type ProgressRecord struct {
	LearnerID         string
	Category          Category
	SessionsCompleted int
	AverageScore      float64
	RecommendedTier   Tier
	UpdatedAt         time.Time
}

// ZeroProgress is the default record for a learner with no history.
// New learners always start at beginner.
func ZeroProgress(learnerID string, category Category) ProgressRecord {
	return ProgressRecord{
		LearnerID:       learnerID,
		Category:        category,
		RecommendedTier: TierBeginner,
	}
}

// ApplyOutcome folds a closed session into the record. The average is
// recomputed from the stored full count so repeated updates cannot drift.
func (r *ProgressRecord) ApplyOutcome(summary SessionSummary, now time.Time) {
	n := float64(r.SessionsCompleted)
	r.AverageScore = (r.AverageScore*n + summary.AverageScore) / (n + 1)
	r.SessionsCompleted++
	r.RecommendedTier = summary.FinalTier
	r.UpdatedAt = now
}
